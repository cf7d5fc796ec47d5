package api

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"fleetopt/internal/model"
)

// Boundary validation: structural checks happen here so the solvers stay
// total functions over their domain and never fail at runtime.

func (s *Server) validateOptimizeRequest(req *model.OptimizeRequest) error {
	if err := s.Validate.Struct(req); err != nil {
		return humanize(err)
	}
	for i, st := range req.Stops {
		if st.Kind != "" && st.ShipmentID == "" {
			return fmt.Errorf("stops[%d]: kind %q requires a shipmentId", i, st.Kind)
		}
		if st.Kind == "" && st.ShipmentID != "" {
			return fmt.Errorf("stops[%d]: shipmentId requires a kind (pickup or drop)", i)
		}
	}
	return nil
}

func (s *Server) validateLoadRequest(req *model.LoadRequest) error {
	if len(req.Shipments) > 0 && len(req.Vehicles) == 0 {
		return errors.New("vehicles must not be empty when shipments are present")
	}
	if err := s.Validate.Struct(req); err != nil {
		return humanize(err)
	}
	return nil
}

// humanize turns validator's field errors into messages a caller can act on
// without knowing our struct layout.
func humanize(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "latitude":
		return fmt.Errorf("%s: latitude must be within [-90,90]", fe.Namespace())
	case "longitude":
		return fmt.Errorf("%s: longitude must be within [-180,180]", fe.Namespace())
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", fe.Namespace(), fe.Param())
	case "required":
		return fmt.Errorf("%s: required", fe.Namespace())
	case "oneof":
		return fmt.Errorf("%s: must be one of %s", fe.Namespace(), fe.Param())
	}
	return err
}

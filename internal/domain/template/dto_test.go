package template

import (
	"errors"
	"testing"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validator.ValidationErrors, got %T (%v)", err, err)
	}
	return errs.ToMap()
}

func TestCreateTemplateRequestValid(t *testing.T) {
	req := CreateTemplateRequest{
		Name: "Office week",
		Slots: []SlotRequest{
			{Weekday: intPtr(1), ShiftID: strPtr("shift-1"), ModalityID: strPtr("mod-1")},
			{Weekday: intPtr(2), ShiftID: strPtr("shift-1"), ModalityID: strPtr("mod-2")},
			{Weekday: intPtr(3)},
		},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateTemplateRequestDuplicateWeekday(t *testing.T) {
	req := CreateTemplateRequest{
		Name: "Broken week",
		Slots: []SlotRequest{
			{Weekday: intPtr(1), ShiftID: strPtr("shift-1"), ModalityID: strPtr("mod-1")},
			{Weekday: intPtr(1), ShiftID: strPtr("shift-2"), ModalityID: strPtr("mod-1")},
		},
	}
	fields := validationFields(t, req.Validate())
	if _, ok := fields["slots[1].weekday"]; !ok {
		t.Errorf("expected duplicate weekday error on slots[1].weekday, got %v", fields)
	}
}

func TestCreateTemplateRequestIncompletePairing(t *testing.T) {
	cases := []SlotRequest{
		{Weekday: intPtr(2), ShiftID: strPtr("shift-1")},
		{Weekday: intPtr(2), ModalityID: strPtr("mod-1")},
	}
	for _, slot := range cases {
		req := CreateTemplateRequest{Name: "Half pair", Slots: []SlotRequest{slot}}
		fields := validationFields(t, req.Validate())
		if _, ok := fields["slots[0]"]; !ok {
			t.Errorf("expected pairing error on slots[0], got %v", fields)
		}
	}
}

func TestCreateTemplateRequestWeekdayRange(t *testing.T) {
	for _, weekday := range []int{-1, 7} {
		req := CreateTemplateRequest{
			Name:  "Out of range",
			Slots: []SlotRequest{{Weekday: intPtr(weekday), ShiftID: strPtr("s"), ModalityID: strPtr("m")}},
		}
		fields := validationFields(t, req.Validate())
		if _, ok := fields["slots[0].weekday"]; !ok {
			t.Errorf("weekday %d: expected range error, got %v", weekday, fields)
		}
	}
}

func TestTemplateSlotFor(t *testing.T) {
	shiftID, modalityID := "shift-1", "mod-1"
	tpl := Template{Slots: []Slot{
		{Weekday: 1, ShiftID: &shiftID, ModalityID: &modalityID},
		{Weekday: 3},
	}}

	if _, ok := tpl.SlotFor(1); !ok {
		t.Error("expected slot for weekday 1")
	}
	if _, ok := tpl.SlotFor(3); ok {
		t.Error("empty slot for weekday 3 must not materialize")
	}
	if _, ok := tpl.SlotFor(5); ok {
		t.Error("expected no slot for weekday 5")
	}
}

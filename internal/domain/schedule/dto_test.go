package schedule

import (
	"errors"
	"testing"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

func fieldsOf(t *testing.T, err error) map[string]bool {
	t.Helper()
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	fields := make(map[string]bool, len(verrs))
	for _, v := range verrs {
		fields[v.Field] = true
	}
	return fields
}

func TestGenerateScheduleRequestValidate(t *testing.T) {
	valid := GenerateScheduleRequest{
		ContractID: "00000000-0000-0000-0000-000000000001",
		TemplateID: "00000000-0000-0000-0000-000000000002",
		DateFrom:   "2025-03-10",
		DateTo:     "2025-03-16",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	empty := GenerateScheduleRequest{DateFrom: "not-a-date", DateTo: "2025-03-16"}
	fields := fieldsOf(t, empty.Validate())
	for _, want := range []string{"contract_id", "template_id", "date_from"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s", want)
		}
	}

	inverted := valid
	inverted.DateFrom = "2025-03-16"
	inverted.DateTo = "2025-03-10"
	if fields := fieldsOf(t, inverted.Validate()); !fields["date_to"] {
		t.Error("inverted range did not flag date_to")
	}
}

func TestBulkCreateScheduleRequestValidate(t *testing.T) {
	empty := BulkCreateScheduleRequest{}
	fields := fieldsOf(t, empty.Validate())
	if !fields["contract_id"] || !fields["items"] {
		t.Errorf("empty request fields = %v", fields)
	}

	bad := BulkCreateScheduleRequest{
		ContractID: "00000000-0000-0000-0000-000000000001",
		Items: []InstanceItemRequest{
			{Date: "2025-03-10", ShiftID: "s1", ModalityID: "m1"},
			{Date: "2025-13-40"},
		},
	}
	fields = fieldsOf(t, bad.Validate())
	for _, want := range []string{"items[1].date", "items[1].shift_id", "items[1].modality_id"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s", want)
		}
	}
	if fields["items[0].date"] {
		t.Error("valid item flagged")
	}
}

func TestBulkUpdateScheduleRequestValidate(t *testing.T) {
	req := BulkUpdateScheduleRequest{
		ContractID: "00000000-0000-0000-0000-000000000001",
		Items: []UpdateInstanceItemRequest{
			{InstanceItemRequest: InstanceItemRequest{Date: "2025-03-10", ShiftID: "s1", ModalityID: "m1"}},
		},
	}
	if fields := fieldsOf(t, req.Validate()); !fields["items[0].id"] {
		t.Error("missing id not flagged")
	}
}

func TestBulkDeleteScheduleRequestValidate(t *testing.T) {
	if err := (&BulkDeleteScheduleRequest{}).Validate(); err == nil {
		t.Error("empty ids accepted")
	}
	req := BulkDeleteScheduleRequest{IDs: []string{"a", ""}}
	if fields := fieldsOf(t, req.Validate()); !fields["ids[1]"] {
		t.Error("empty id entry not flagged")
	}
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/spec-kit/helpdesk-admin/internal/forms"
)

func TestCategoryIDListMixedShapes(t *testing.T) {
	payload := []byte(`{
		"name": "Sam Agent",
		"category_ids": ["d1", {"id": "d2", "name": "Billing"}]
	}`)

	var req AgentUpsertRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ids := forms.NormalizeCategoryIDs(req.CategoryIDs)
	if len(ids) != 2 || ids[0] != "d1" || ids[1] != "d2" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestCategoryIDListRejectsInvalidShapes(t *testing.T) {
	var l CategoryIDList
	if err := json.Unmarshal([]byte(`[42]`), &l); err == nil {
		t.Error("expected error for numeric category reference")
	}
	if err := json.Unmarshal([]byte(`"not-an-array"`), &l); err == nil {
		t.Error("expected error for non-array payload")
	}
}

func TestCategoryIDListEmpty(t *testing.T) {
	var l CategoryIDList
	if err := json.Unmarshal([]byte(`[]`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(forms.NormalizeCategoryIDs(l)) != 0 {
		t.Errorf("expected no ids, got %v", l)
	}
}

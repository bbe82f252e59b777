package validate_test

import (
	"bytes"
	"encoding/json"
)

// orderJSON — минимальный валидный заказ; пустой customerID делает его невалидным.
func orderJSON(id, customerID, status string) string {
	return `{
  "id": "` + id + `",
  "customer_id": "` + customerID + `",
  "processing_branch_id": "br-1",
  "status": "` + status + `",
  "arrived_at_branch_at": "2025-06-02T09:00:00Z",
  "created_at": "2025-06-01T18:30:00Z",
  "branch": {"id":"br-1","name":"Central","branch_type":"main","sorting_window_hours":6}
}`
}

func compact(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}

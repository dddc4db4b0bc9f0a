package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JoeShih716/go-teller/pkg/metrics"
)

func TestRecordOperation(t *testing.T) {
	c := NewCollector("teller")
	c.RecordOperation(metrics.OpDeposit, "ok", time.Millisecond)
	c.RecordOperation(metrics.OpDeposit, "ok", time.Millisecond)
	c.RecordOperation(metrics.OpWithdraw, "insufficient_funds", time.Millisecond)
	c.RecordBalance(12.5)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	var gotOps, gotBalance bool
	for _, mf := range families {
		switch mf.GetName() {
		case "teller_operations_total":
			gotOps = true
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			if total != 3 {
				t.Errorf("operations_total sum=%v want 3", total)
			}
			if len(mf.GetMetric()) != 2 {
				t.Errorf("label sets=%d want 2", len(mf.GetMetric()))
			}
		case "teller_balance":
			gotBalance = true
			if v := mf.GetMetric()[0].GetGauge().GetValue(); v != 12.5 {
				t.Errorf("balance=%v want 12.5", v)
			}
		}
	}
	if !gotOps || !gotBalance {
		t.Fatalf("missing families: ops=%v balance=%v", gotOps, gotBalance)
	}
}

func TestHandler(t *testing.T) {
	c := NewCollector("teller")
	c.RecordOperation(metrics.OpBalance, "ok", time.Microsecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("code=%d want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `teller_operations_total{op="balance",outcome="ok"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", body)
	}
}

package plan

import "strings"

// maxSkipReasons caps how many distinct reasons are forwarded to the
// provider as regeneration context.
const maxSkipReasons = 10

// defaultSkipReasonLabels are the placeholder labels the skip dialog uses
// when the user gives no real reason. They carry no signal and are filtered
// out.
//
//nolint:gochecknoglobals // fixed label set
var defaultSkipReasonLabels = map[string]bool{
	"No reason provided": true,
}

// Feedback is the optional regeneration context passed through unmodified to
// the plan provider. The adjusters never read it.
type Feedback struct {
	SkipReasons []string `json:"skipReasons"`
}

// collectSkipReasons derives feedback from the given week's workout logs: up
// to maxSkipReasons distinct, non-default skip reasons in log order. Returns
// nil when there is nothing worth forwarding.
func collectSkipReasons(logs []WorkoutLog, week int) *Feedback {
	var (
		seen    = make(map[string]bool)
		reasons []string
	)
	for _, log := range logs {
		if log.Week != week || log.Status != StatusSkipped {
			continue
		}
		reason := strings.TrimSpace(log.Reason)
		if reason == "" || defaultSkipReasonLabels[reason] || seen[reason] {
			continue
		}
		seen[reason] = true
		reasons = append(reasons, reason)
		if len(reasons) == maxSkipReasons {
			break
		}
	}

	if len(reasons) == 0 {
		return nil
	}
	return &Feedback{SkipReasons: reasons}
}

package model

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"

	CheckStatusOK          = "ok"
	CheckStatusUnreachable = "unreachable"

	CheckDatabase = "database"
)

// HealthReport is built fresh on every probe and never persisted. Status is
// "ok" only when every entry in Checks is "ok".
type HealthReport struct {
	Status    string
	Timestamp string
	Checks    map[string]string
}

func (r HealthReport) Healthy() bool {
	return r.Status == HealthStatusOK
}

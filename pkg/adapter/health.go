package adapter

import (
	"bytes"
	"context"

	"github.com/opsbridge/snbridge/pkg/events"
	"github.com/opsbridge/snbridge/pkg/models"
)

// hibernationMarker is the body signature a hibernating instance
// serves instead of data. Detection has to inspect the body: the HTTP
// call itself succeeds with a 200.
const hibernationMarker = "Instance Hibernating page"

// Connect triggers one health check. This is the entry point the host
// platform calls once after construction; the outcome is emitted and
// logged by the check itself.
func (a *Adapter) Connect(ctx context.Context) {
	_, _ = a.HealthCheck(ctx)
}

// HealthCheck performs exactly one read against the remote instance
// and classifies the outcome. Exactly one status event is emitted per
// invocation. The classification order is fixed: a transport error
// always wins; the body is only inspected when the transport call
// succeeded.
//
// The return value completes the caller's (result, error) contract in
// all three branches: transport errors and the synthesized hibernation
// error come back as the error, the retrieved records as the result.
func (a *Adapter) HealthCheck(ctx context.Context) ([]models.ChangeRecord, error) {
	env, err := a.client.Get(ctx)
	if err != nil {
		a.log.Error("%s: health check failed: %v", a.id, err)
		a.emitOffline(err.Error())

		return nil, err
	}

	if bytes.Contains(env.Body, []byte(hibernationMarker)) {
		a.log.Error("%s: %v", a.id, ErrInstanceHibernating)
		a.emitOffline(ErrInstanceHibernating.Error())

		return nil, ErrInstanceHibernating
	}

	records, decodeErr := decodeRecords(env.Body)
	if decodeErr != nil {
		// A live instance answered with something we cannot decode;
		// the instance is still up, so this does not flip the status.
		a.log.Warn("%s: could not decode table response: %v", a.id, decodeErr)
	}

	a.emitOnline()

	return records, nil
}

// emitOnline emits the ONLINE event and logs the availability line.
func (a *Adapter) emitOnline() {
	a.setStatus(models.HealthOnline, "")
	a.emitStatus(models.HealthOnline)
	a.log.Debug("%s: Service Now instance is available", a.id)
}

// emitOffline emits the OFFLINE event and logs the unavailability
// line. The message records why for the status snapshot and history.
func (a *Adapter) emitOffline(message string) {
	a.setStatus(models.HealthOffline, message)
	a.emitStatus(models.HealthOffline)
	a.log.Warn("%s: Service Now instance is unavailable", a.id)
}

// emitStatus publishes an event named after the status, carrying the
// instance id. This is the sole channel by which the host platform
// learns of connectivity state.
func (a *Adapter) emitStatus(status models.HealthStatus) {
	a.bus.Emit(string(status), events.Payload{ID: a.id})
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opsbridge/snbridge/pkg/models"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

// GetRecords reads the configured table and returns the records in
// canonical form. Transport errors pass through unchanged; an empty
// remote result set yields an empty slice, not an error.
func (a *Adapter) GetRecords(ctx context.Context) ([]models.ChangeRecord, error) {
	env, err := a.client.Get(ctx)
	if err != nil {
		return nil, err
	}

	return decodeRecords(env.Body)
}

// PostRecord creates a record in the configured table and returns the
// created record, as echoed back by the remote instance, in canonical
// form.
func (a *Adapter) PostRecord(ctx context.Context, fields servicenow.Record) (*models.ChangeRecord, error) {
	env, err := a.client.Post(ctx, fields)
	if err != nil {
		return nil, err
	}

	var resp servicenow.RecordResponse
	if err := json.Unmarshal(env.Body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedResponse, err)
	}

	record := models.NormalizeRecord(resp.Result)

	return &record, nil
}

// decodeRecords reshapes a raw table read body into canonical records.
// Individual records with missing fields null-fill and never fail the
// set.
func decodeRecords(body []byte) ([]models.ChangeRecord, error) {
	var resp servicenow.TableResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedResponse, err)
	}

	records := make([]models.ChangeRecord, 0, len(resp.Result))
	for _, raw := range resp.Result {
		records = append(records, models.NormalizeRecord(raw))
	}

	return records, nil
}

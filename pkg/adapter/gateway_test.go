package adapter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsbridge/snbridge/pkg/events"
	"github.com/opsbridge/snbridge/pkg/logger"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

func newTestAdapter(t *testing.T, client TableClient) *Adapter {
	t.Helper()

	return New("sn1", client, events.NewBus(), logger.New(&bytes.Buffer{}, logger.LevelDebug))
}

func TestGetRecords_Normalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"result":[{"number":"CHG2","sys_id":"xyz","active":false,"priority":"3","description":"","work_start":null,"work_end":null}]}`

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Get(gomock.Any()).Return(&servicenow.Envelope{
		StatusCode: 200,
		Body:       []byte(body),
	}, nil)

	a := newTestAdapter(t, mockClient)

	records, err := a.GetRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "CHG2", got.ChangeTicketNumber)
	assert.Equal(t, "xyz", got.ChangeTicketKey)
	assert.False(t, got.Active)
	assert.Equal(t, "3", got.Priority)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.WorkStart)
	assert.Nil(t, got.WorkEnd)
}

func TestGetRecords_EmptyResultSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Get(gomock.Any()).Return(&servicenow.Envelope{
		StatusCode: 200,
		Body:       []byte(`{"result":[]}`),
	}, nil)

	a := newTestAdapter(t, mockClient)

	records, err := a.GetRecords(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetRecords_TransportErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transportErr := errors.New("dial tcp: i/o timeout")

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Get(gomock.Any()).Return(nil, transportErr)

	a := newTestAdapter(t, mockClient)

	records, err := a.GetRecords(context.Background())
	require.Error(t, err)
	assert.Equal(t, transportErr, err)
	assert.Nil(t, records)
}

func TestGetRecords_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Get(gomock.Any()).Return(&servicenow.Envelope{
		StatusCode: 200,
		Body:       []byte("not json"),
	}, nil)

	a := newTestAdapter(t, mockClient)

	_, err := a.GetRecords(context.Background())
	require.ErrorIs(t, err, errMalformedResponse)
}

func TestGetRecords_MissingFieldsNullFill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Second record is missing most fields; it must not fail or drop
	// the enclosing set.
	body := `{"result":[
		{"number":"CHG1","sys_id":"abc","active":"true","priority":"1","description":"d","work_start":"t0","work_end":"t1"},
		{"number":"CHG2"}
	]}`

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Get(gomock.Any()).Return(&servicenow.Envelope{
		StatusCode: 200,
		Body:       []byte(body),
	}, nil)

	a := newTestAdapter(t, mockClient)

	records, err := a.GetRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "CHG1", records[0].ChangeTicketNumber)
	assert.True(t, records[0].Active)
	require.NotNil(t, records[0].WorkStart)
	assert.Equal(t, "t0", *records[0].WorkStart)

	assert.Equal(t, "CHG2", records[1].ChangeTicketNumber)
	assert.Empty(t, records[1].ChangeTicketKey)
	assert.Nil(t, records[1].WorkStart)
	assert.Nil(t, records[1].WorkEnd)
}

func TestPostRecord_NormalizesEcho(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fields := servicenow.Record{"description": "patch window"}

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Post(gomock.Any(), fields).Return(&servicenow.Envelope{
		StatusCode: 201,
		Body:       []byte(`{"result":{"number":"CHG9","sys_id":"zzz","active":"true"}}`),
	}, nil)

	a := newTestAdapter(t, mockClient)

	record, err := a.PostRecord(context.Background(), fields)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "CHG9", record.ChangeTicketNumber)
	assert.Equal(t, "zzz", record.ChangeTicketKey)
	assert.True(t, record.Active)
}

func TestPostRecord_TransportErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transportErr := errors.New("connection reset by peer")

	mockClient := NewMockTableClient(ctrl)
	mockClient.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil, transportErr)

	a := newTestAdapter(t, mockClient)

	record, err := a.PostRecord(context.Background(), servicenow.Record{})
	require.Error(t, err)
	assert.Equal(t, transportErr, err)
	assert.Nil(t, record)
}

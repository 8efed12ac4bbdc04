package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotapp/crm-console/internal/config"
	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	"github.com/pilotapp/crm-console/pkg/apperror"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("gateway_test")

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.NewNop(), testMetrics)
}

func TestContactGatewayListFiltersByCustomer(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("customerId")
		json.NewEncoder(w).Encode([]entity.Contact{{ID: "1", CustomerID: "QF1"}})
	})

	contacts, err := NewContactGateway(c).List(context.Background(), "QF1")
	require.NoError(t, err)
	assert.Equal(t, "/contacts", gotPath)
	assert.Equal(t, "QF1", gotQuery)
	require.Len(t, contacts, 1)
	assert.Equal(t, "QF1", contacts[0].CustomerID)
}

func TestCustomerGatewayCreatePostsAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customers", r.URL.Path)

		var in entity.Customer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "42"
		json.NewEncoder(w).Encode(in)
	})

	saved, err := NewCustomerGateway(c).Create(context.Background(), &entity.Customer{
		AirlineName:  "Qantas",
		CustomerCode: "QF1",
		CustomerType: enum.CustomerTypeLead,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", saved.ID)
	assert.Equal(t, "QF1", saved.CustomerCode)
}

func TestChecklistGatewayPreservesNAAnswers(t *testing.T) {
	// the upstream round trip must not collapse "NA" into a boolean
	stored := make(map[string]json.RawMessage)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var raw map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			raw["id"] = json.RawMessage(`"7"`)
			stored = raw
			json.NewEncoder(w).Encode(raw)
		case http.MethodGet:
			json.NewEncoder(w).Encode(stored)
		}
	})
	gw := NewChecklistGateway(c)

	_, err := gw.Create(context.Background(), &entity.Checklist{
		CustomerID: "QF1",
		Answers: map[string]enum.Answer{
			"q1": enum.AnswerYes,
			"q2": enum.AnswerNA,
		},
	})
	require.NoError(t, err)

	reloaded, err := gw.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, enum.AnswerNA, reloaded.Answers["q2"])
	assert.Equal(t, enum.AnswerYes, reloaded.Answers["q1"])
}

func TestGatewayUpdateUsesPut(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/afrdata/9", r.URL.Path)
		json.NewEncoder(w).Encode(entity.AFRData{ID: "9", Organization: "Ops"})
	})

	saved, err := NewAFRDataGateway(c).Update(context.Background(), "9", &entity.AFRData{Organization: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, "9", saved.ID)
}

func TestGatewayFailureBecomesAppError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewCustomerGateway(c).List(context.Background())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.Contains(t, appErr.Message, "fetch customers")
}

func TestQuestionGatewayLeavesIDToBackend(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/checklistQuestions", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		// the console never invents question ids client-side
		assert.NotContains(t, raw, "id")
		raw["id"] = "q10"
		json.NewEncoder(w).Encode(raw)
	})

	saved, err := NewQuestionGateway(c).Create(context.Background(), &entity.QuestionDefinition{Question: "Ready for a Live Trial?"})
	require.NoError(t, err)
	assert.Equal(t, "q10", saved.ID)
}

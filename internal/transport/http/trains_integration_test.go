package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshitTripathi3008/railway-reservation/internal/app"
	"github.com/HarshitTripathi3008/railway-reservation/internal/storage/postgres"
	"github.com/HarshitTripathi3008/railway-reservation/internal/testutil"
)

func TestAddTrainThenSearch_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)
	repo := postgres.NewTrainRepository(pool)
	svc := app.NewCatalogService(repo)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	addBody := []byte(`{"train_name":"Express1","departure_station":"A","arrival_station":"B","departure_time":"2025-06-01T08:00:00Z","arrival_time":"2025-06-01T12:00:00Z","seats_available":100}`)
	addReq := httptest.NewRequest(http.MethodPost, "/add-train", bytes.NewBuffer(addBody))
	addRec := httptest.NewRecorder()

	HandleAddTrain(svc).ServeHTTP(addRec, addReq)

	if addRec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", addRec.Code, addRec.Body.String())
	}

	var added addTrainResponse
	if err := json.NewDecoder(addRec.Body).Decode(&added); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !added.Success || added.TrainID == "" {
		t.Fatalf("unexpected response: %+v", added)
	}

	searchReq := httptest.NewRequest(http.MethodGet, "/search-trains?departure_station=A&arrival_station=B", nil)
	searchRec := httptest.NewRecorder()

	HandleSearchTrains(svc).ServeHTTP(searchRec, searchReq)

	if searchRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", searchRec.Code)
	}

	var found searchTrainsResponse
	if err := json.NewDecoder(searchRec.Body).Decode(&found); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !found.Success || len(found.Trains) != 1 {
		t.Fatalf("unexpected response: %+v", found)
	}
	if found.Trains[0].TrainID != added.TrainID {
		t.Fatalf("expected train %s, got %s", added.TrainID, found.Trains[0].TrainID)
	}
	if found.Trains[0].AvailableTickets != 100 {
		t.Fatalf("expected available_tickets equal to initial capacity, got %d", found.Trains[0].AvailableTickets)
	}
}

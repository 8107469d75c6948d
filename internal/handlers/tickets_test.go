package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"printcare/internal/database"
	"printcare/internal/models"
)

func TestTicketStatusTransitions(t *testing.T) {
	r := setupTest(t)
	mgr := seedUser(t, "mgr", "Mgr@12345", models.RoleManager)
	client := seedClient(t, "acme")
	cookies := sessionFor(t, r, mgr)

	rec := doJSON(r, http.MethodPost, "/api/tickets", map[string]interface{}{
		"client_id": client.ID,
		"issue":     "printer jams on duplex",
	}, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Ticket models.ServiceTicket `json:"ticket"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	id := body.Ticket.ID
	if body.Ticket.Status != models.TicketOpen || body.Ticket.Priority != "MEDIUM" {
		t.Fatalf("unexpected new ticket: %+v", body.Ticket)
	}

	// OPEN cannot jump straight to RESOLVED
	bad := doJSON(r, http.MethodPut, fmt.Sprintf("/api/tickets/%d", id),
		map[string]interface{}{"status": "RESOLVED"}, cookies)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("invalid transition: got %d, want 400", bad.Code)
	}

	for _, status := range []string{"IN_PROGRESS", "RESOLVED", "CLOSED"} {
		rec := doJSON(r, http.MethodPut, fmt.Sprintf("/api/tickets/%d", id),
			map[string]interface{}{"status": status}, cookies)
		if rec.Code != http.StatusOK {
			t.Fatalf("transition to %s: got %d: %s", status, rec.Code, rec.Body.String())
		}
	}

	var stored models.ServiceTicket
	if err := database.DB.First(&stored, id).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.TicketClosed {
		t.Fatalf("final status %s, want CLOSED", stored.Status)
	}
}

func TestClientRoleCannotRaiseForeignTickets(t *testing.T) {
	r := setupTest(t)
	own := seedClient(t, "own")
	other := seedClient(t, "other")

	portal := seedUser(t, "portal", "Portal@123", models.RoleClient)
	if err := database.DB.Model(portal).Update("client_id", own.ID).Error; err != nil {
		t.Fatal(err)
	}
	cookies := sessionFor(t, r, portal)

	foreign := doJSON(r, http.MethodPost, "/api/tickets", map[string]interface{}{
		"client_id": other.ID,
		"issue":     "toner low",
	}, cookies)
	if foreign.Code != http.StatusForbidden {
		t.Fatalf("foreign ticket: got %d, want 403", foreign.Code)
	}

	ok := doJSON(r, http.MethodPost, "/api/tickets", map[string]interface{}{
		"client_id": own.ID,
		"issue":     "toner low",
	}, cookies)
	if ok.Code != http.StatusOK {
		t.Fatalf("own ticket: got %d: %s", ok.Code, ok.Body.String())
	}
}

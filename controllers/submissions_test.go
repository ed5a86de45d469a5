package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/models"
)

type managementFixture struct {
	router *gin.Engine
	store  *fakeContactStore
}

// newManagementFixture mounts the contact moderation endpoints without the
// auth layer; token handling is covered in auth_test.go.
func newManagementFixture() *managementFixture {
	store := newFakeContactStore()
	cc := NewContactSubmissionController(store)

	router := gin.New()
	group := router.Group("/api/contact-submissions")
	group.GET("/get-submissions", cc.List)
	group.GET("/get-submission/:id", cc.Get)
	group.PUT("/update-status/:id", cc.UpdateStatus)
	group.DELETE("/delete-submission/:id", cc.Delete)
	group.GET("/statistics", cc.Statistics)

	return &managementFixture{router: router, store: store}
}

func (f *managementFixture) seed(t *testing.T, status models.FollowupStatus) *models.ContactSubmission {
	t.Helper()
	sub, err := f.store.Create(context.Background(), models.ContactInput{
		Name:    "Visitor",
		Email:   "visitor@x.com",
		Message: "Looking for laminated film rolls",
	}, "203.0.113.7")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if status != models.StatusPending {
		if _, err := f.store.UpdateStatus(context.Background(), sub.ID.Hex(), models.StatusUpdateInput{FollowupStatus: &status}); err != nil {
			t.Fatalf("seed status: %v", err)
		}
	}
	return sub
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateStatusChangesOnlyRequestedFields(t *testing.T) {
	f := newManagementFixture()
	sub := f.seed(t, models.StatusPending)

	w := do(f.router, http.MethodPut, "/api/contact-submissions/update-status/"+sub.ID.Hex(),
		map[string]interface{}{"followupStatus": "Contacted"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	updated, err := f.store.GetByID(context.Background(), sub.ID.Hex())
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.FollowupStatus != models.StatusContacted {
		t.Errorf("followupStatus = %q, want Contacted", updated.FollowupStatus)
	}
	if updated.IsSpam != sub.IsSpam {
		t.Error("isSpam changed by a status-only update")
	}
	if updated.Name != sub.Name || updated.Email != sub.Email || updated.Message != sub.Message {
		t.Error("core fields changed by update-status")
	}
	if !updated.CreatedAt.Equal(sub.CreatedAt) {
		t.Error("createdAt changed by update-status")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newManagementFixture()
	sub := f.seed(t, models.StatusPending)

	w := do(f.router, http.MethodPut, "/api/contact-submissions/update-status/"+sub.ID.Hex(),
		map[string]interface{}{"followupStatus": "Archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	unchanged, _ := f.store.GetByID(context.Background(), sub.ID.Hex())
	if unchanged.FollowupStatus != models.StatusPending {
		t.Errorf("followupStatus = %q, want untouched Pending", unchanged.FollowupStatus)
	}
}

func TestUpdateStatusUnknownIDReturns404(t *testing.T) {
	f := newManagementFixture()

	w := do(f.router, http.MethodPut, "/api/contact-submissions/update-status/652f1a2b3c4d5e6f70818283",
		map[string]interface{}{"followupStatus": "Read"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteRemovesExactlyTargetedRecord(t *testing.T) {
	f := newManagementFixture()
	keep := f.seed(t, models.StatusPending)
	target := f.seed(t, models.StatusRead)

	w := do(f.router, http.MethodDelete, "/api/contact-submissions/delete-submission/"+target.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}

	w = do(f.router, http.MethodGet, "/api/contact-submissions/get-submission/"+target.ID.Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted status = %d, want 404", w.Code)
	}

	w = do(f.router, http.MethodGet, "/api/contact-submissions/get-submission/"+keep.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Errorf("get surviving status = %d, want 200", w.Code)
	}
}

func TestGetMalformedIDReturns404(t *testing.T) {
	f := newManagementFixture()

	// Malformed ids are reported as not-found, same as unknown ids.
	w := do(f.router, http.MethodGet, "/api/contact-submissions/get-submission/not-a-hex-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestStatisticsCountsPerStatus(t *testing.T) {
	f := newManagementFixture()
	f.seed(t, models.StatusPending)
	f.seed(t, models.StatusPending)
	f.seed(t, models.StatusContacted)

	w := do(f.router, http.MethodGet, "/api/contact-submissions/statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var stats models.SubmissionStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode statistics: %v", err)
	}

	want := models.SubmissionStats{Total: 3, Pending: 2, Contacted: 1}
	if stats != want {
		t.Errorf("statistics = %+v, want %+v", stats, want)
	}
	if stats.Pending+stats.Contacted+stats.NoResponse+stats.Read != stats.Total {
		t.Error("per-status counts do not sum to total")
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	f := newManagementFixture()
	f.seed(t, models.StatusPending)
	f.seed(t, models.StatusPending)

	w := do(f.router, http.MethodGet, "/api/contact-submissions/get-submissions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var listed []models.ContactSubmission
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed = %d, want 2", len(listed))
	}
	if listed[0].CreatedAt.Before(listed[1].CreatedAt) {
		t.Error("list not sorted newest first")
	}
}

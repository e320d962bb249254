package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/salescampus/salescampus-backend/internal/records"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

func TestAdminStatsSummary(t *testing.T) {
	store := newSeededStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	resp := httptest.NewRecorder()
	AdminStatsSummary(store, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var stats models.AdminStats
	decodeData(t, resp.Body, &stats)
	if stats.TotalUsers != 4 {
		t.Fatalf("expected 4 users got %d", stats.TotalUsers)
	}
	if stats.ActiveTrainers != 1 {
		t.Fatalf("expected 1 active trainer got %d", stats.ActiveTrainers)
	}
	if stats.TotalGroups != 2 {
		t.Fatalf("expected 2 groups got %d", stats.TotalGroups)
	}
}

func TestAdminPendingPostsAndModeration(t *testing.T) {
	store := newSeededStore(t)
	signIn(t, store, "max.mueller@beispiel.de")
	created, err := store.CreatePost(context.Background(), records.CreatePostInput{Content: "bitte freigeben"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	router := chi.NewRouter()
	router.Get("/api/admin/v1/posts/pending", AdminPendingPosts(store, nil))
	router.Post("/api/admin/v1/posts/{postId}/approve", AdminApprovePost(store, nil))
	router.Post("/api/admin/v1/posts/{postId}/reject", AdminRejectPost(store, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/posts/pending", nil))
	var pending []models.Post
	decodeData(t, resp.Body, &pending)
	if len(pending) != 1 || pending[0].ID != created.ID {
		t.Fatalf("expected the new post pending, got %+v", pending)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/admin/v1/posts/"+created.ID+"/approve", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	post, err := store.Post(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("read post: %v", err)
	}
	if post.Status != enums.PostStatusApproved {
		t.Fatalf("expected approved got %s", post.Status)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/posts/pending", nil))
	pending = nil
	decodeData(t, resp.Body, &pending)
	if len(pending) != 0 {
		t.Fatalf("expected no pending posts, got %d", len(pending))
	}
}

func TestAdminApproveUnknownPostIsNoop(t *testing.T) {
	store := newSeededStore(t)

	router := chi.NewRouter()
	router.Post("/api/admin/v1/posts/{postId}/approve", AdminApprovePost(store, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/admin/v1/posts/missing/approve", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAdminActivitiesDerivedFromPosts(t *testing.T) {
	store := newSeededStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/activities", nil)
	resp := httptest.NewRecorder()
	AdminActivities(store, nil).ServeHTTP(resp, req)

	var activities []models.Activity
	decodeData(t, resp.Body, &activities)
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities got %d", len(activities))
	}
	if activities[0].Type != enums.ActivityNewPost || activities[0].Points != 10 {
		t.Fatalf("unexpected activity %+v", activities[0])
	}
}

func TestAdminUsersListAndUpdate(t *testing.T) {
	store := newSeededStore(t)

	resp := httptest.NewRecorder()
	AdminUsers(store, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/users", nil))
	var users []models.User
	decodeData(t, resp.Body, &users)
	if len(users) != 4 {
		t.Fatalf("expected 4 users got %d", len(users))
	}

	router := chi.NewRouter()
	router.Patch("/api/admin/v1/users/{userId}", AdminUpdateUser(store, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/users/3", bytes.NewReader([]byte(`{"points":150,"level":2}`)))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var updated models.User
	decodeData(t, resp.Body, &updated)
	if updated.Points != 150 || updated.Level != 2 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Email != "max.mueller@beispiel.de" {
		t.Fatalf("untouched fields must survive, got %+v", updated)
	}
}

func TestAdminUpdateUnknownUser(t *testing.T) {
	store := newSeededStore(t)

	router := chi.NewRouter()
	router.Patch("/api/admin/v1/users/{userId}", AdminUpdateUser(store, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/users/999", bytes.NewReader([]byte(`{"points":1}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

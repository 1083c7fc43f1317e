package controller

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "controller-test-secret"

type stubRedundancyService struct {
	lastCompanyId uuid.UUID
}

func (s *stubRedundancyService) Trigger(_ context.Context, companyId uuid.UUID) (*dto.TriggerAnalysisResponse, error) {
	s.lastCompanyId = companyId
	return &dto.TriggerAnalysisResponse{RunId: uuid.New(), Status: "queued"}, nil
}

func (s *stubRedundancyService) GetProgress(_ context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error) {
	s.lastCompanyId = companyId
	return &dto.AnalysisProgressResponse{RunId: uuid.New(), Status: "running", Stage: "scoring overlaps", Percent: 40}, nil
}

func (s *stubRedundancyService) Cancel(_ context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error) {
	s.lastCompanyId = companyId
	return &dto.AnalysisProgressResponse{RunId: uuid.New(), Status: "running", CancellationRequested: true}, nil
}

func (s *stubRedundancyService) GetResult(_ context.Context, companyId uuid.UUID) (*dto.AnalysisResultResponse, error) {
	s.lastCompanyId = companyId
	return &dto.AnalysisResultResponse{RunId: uuid.New(), Status: "completed"}, nil
}

func newRedundancyTestApp(t *testing.T, svc *stubRedundancyService) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewRedundancyController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    uuid.New().String(),
		"company_id": uuid.New().String(),
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func TestRedundancyRoutesRejectMalformedCompanyId(t *testing.T) {
	svc := &stubRedundancyService{}
	app := newRedundancyTestApp(t, svc)
	token := bearerToken(t)

	routes := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/redundancy/v1/not-a-uuid/analyze"},
		{fiber.MethodGet, "/api/redundancy/v1/not-a-uuid/progress"},
		{fiber.MethodDelete, "/api/redundancy/v1/not-a-uuid/progress"},
		{fiber.MethodGet, "/api/redundancy/v1/not-a-uuid/result"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", route.method, route.path, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s %s status = %d, want 400", route.method, route.path, resp.StatusCode)
		}
	}

	if svc.lastCompanyId != uuid.Nil {
		t.Errorf("service was called with companyId %s despite malformed parameter", svc.lastCompanyId)
	}
}

func TestRedundancyProgressPassesParsedCompanyId(t *testing.T) {
	svc := &stubRedundancyService{}
	app := newRedundancyTestApp(t, svc)
	companyId := uuid.New()

	req := httptest.NewRequest(fiber.MethodGet, "/api/redundancy/v1/"+companyId.String()+"/progress", nil)
	req.Header.Set("Authorization", bearerToken(t))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if svc.lastCompanyId != companyId {
		t.Errorf("service saw companyId %s, want %s", svc.lastCompanyId, companyId)
	}
}

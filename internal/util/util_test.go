package util

import (
	"errors"
	"interview_readiness_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestNormalizeDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2024, 3, 2, 5, 30, 0, 0, loc) // 2024-03-01 21:30 UTC
	got := NormalizeDay(in)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDay: got=%v want=%v", got, want)
	}
	if DayKey(in) != "2024-03-01" {
		t.Fatalf("DayKey: got=%s want=2024-03-01", DayKey(in))
	}
	if !EndOfDay(in).Equal(want.AddDate(0, 0, 1)) {
		t.Fatalf("EndOfDay: got=%v", EndOfDay(in))
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-06", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{"2024-05-06 13:45:00", time.Date(2024, 5, 6, 13, 45, 0, 0, time.UTC)},
		{"2024-05-06T10:00:00+02:00", time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil || !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Fatalf("ParseDate(%q): got=%v err=%v want=%v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseDate("next friday"); !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseDate invalid: got=%v want ErrValidation", err)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{3.14159, 3.14},
		{2.675000001, 2.68},
		{-1.006, -1.01},
		{100, 100},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): got=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestClampAndParse(t *testing.T) {
	if Clamp(0, 1, 10) != 1 || Clamp(11, 1, 10) != 10 || Clamp(5, 1, 10) != 5 {
		t.Fatalf("Clamp returned unexpected values")
	}
	if ParseIntDefault("", 30) != 30 || ParseIntDefault("abc", 30) != 30 || ParseIntDefault("7", 30) != 7 {
		t.Fatalf("ParseIntDefault returned unexpected values")
	}
	if IsUUID("not-a-uuid") || !IsUUID("2c1f5c1e-7d35-4d0e-9a53-5b7d2b0f6d11") {
		t.Fatalf("IsUUID returned unexpected values")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "a@example.com"}
	user.ID = "2c1f5c1e-7d35-4d0e-9a53-5b7d2b0f6d11"

	token, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: got=%+v", claims)
	}

	if _, err := ParseJWT(token, "other"); err == nil {
		t.Fatalf("expected signature error with wrong secret")
	}

	expired, _ := GenerateJWT(user, "secret", -time.Minute)
	if _, err := ParseJWT(expired, "secret"); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("skillName is required"), http.StatusBadRequest},
		{"conflict", NewConflictError("skill already exists"), http.StatusConflict},
		{"not found", NewNotFoundError("skill not found"), http.StatusNotFound},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"opaque", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("status: got=%d want=%d", rec.Code, tc.want)
			}
		})
	}
}

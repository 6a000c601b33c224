package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/repository"
)

func newSettingsServiceForTest() (*SettingsService, *fakeSettingsRepo) {
	repo := newFakeSettingsRepo()
	return NewSettingsService(repo, nil, zap.NewNop()), repo
}

func TestSettingsDefaults(t *testing.T) {
	svc, _ := newSettingsServiceForTest()

	content, err := svc.LandingContent(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if content.Hero.Title == "" {
		t.Error("default landing content has empty hero")
	}

	seo, err := svc.SEOConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if seo.Title == "" {
		t.Error("default seo config has empty title")
	}

	calendar, err := svc.CalendarConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(calendar.HoursOfOperation) != 7 {
		t.Errorf("default calendar covers %d days, want 7", len(calendar.HoursOfOperation))
	}
	if !calendar.HoursOfOperation["saturday"].Closed {
		t.Error("saturday open by default")
	}
}

func TestSettingsUpdateAndRead(t *testing.T) {
	svc, repo := newSettingsServiceForTest()

	seo := domain.SEOConfig{Title: "Custom Title", Description: "Custom description"}
	if err := svc.UpdateSEOConfig(context.Background(), seo); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.docs[repository.SettingsSEO]; !ok {
		t.Fatal("seo document not stored")
	}

	got, err := svc.SEOConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Custom Title" {
		t.Errorf("Title = %q after update", got.Title)
	}
}

func TestIsBlackoutDate(t *testing.T) {
	svc, _ := newSettingsServiceForTest()
	cfg := domain.DefaultCalendarConfig()
	cfg.BlackoutDates = []string{"2026-07-04"}
	if err := svc.UpdateCalendarConfig(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	blocked, err := svc.IsBlackoutDate(context.Background(), time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if !blocked {
		t.Error("blackout date reported as available")
	}

	open, err := svc.IsBlackoutDate(context.Background(), time.Date(2026, 7, 6, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if open {
		t.Error("regular date reported as blackout")
	}
}

func TestServiceHours(t *testing.T) {
	svc, _ := newSettingsServiceForTest()
	cfg := domain.DefaultCalendarConfig()
	cfg.SpecialAvailability = []domain.SpecialAvailability{
		{Date: "2026-03-06", Open: "12:00", Close: "15:00"},
		{Date: "2026-03-09", Closed: true},
	}
	if err := svc.UpdateCalendarConfig(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	// 2026-03-06 is a Friday; the special entry overrides weekday hours.
	hours, err := svc.ServiceHours(context.Background(), time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if hours == nil || hours.Open != "12:00" || hours.Close != "15:00" {
		t.Errorf("special day hours = %+v", hours)
	}

	// 2026-03-09 is a Monday closed for the day.
	hours, err = svc.ServiceHours(context.Background(), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if hours == nil || !hours.Closed {
		t.Errorf("closed special day = %+v", hours)
	}

	// A plain Monday falls back to the weekday schedule.
	hours, err = svc.ServiceHours(context.Background(), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if hours == nil || hours.Open != "09:00" || hours.Close != "17:00" {
		t.Errorf("weekday hours = %+v", hours)
	}
}

package domain

// DayHours describes opening hours for one weekday or special date.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// SpecialAvailability overrides regular hours for a single date.
type SpecialAvailability struct {
	Date   string `json:"date"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// CalendarConfig is the singleton business-hours document.
type CalendarConfig struct {
	BlackoutDates       []string              `json:"blackoutDates"`
	HoursOfOperation    map[string]DayHours   `json:"hoursOfOperation"`
	SpecialAvailability []SpecialAvailability `json:"specialAvailability,omitempty"`
}

// DefaultCalendarConfig is served when no document has been saved.
func DefaultCalendarConfig() CalendarConfig {
	weekday := DayHours{Open: "09:00", Close: "17:00"}
	return CalendarConfig{
		BlackoutDates: []string{},
		HoursOfOperation: map[string]DayHours{
			"monday":    weekday,
			"tuesday":   weekday,
			"wednesday": weekday,
			"thursday":  weekday,
			"friday":    weekday,
			"saturday":  {Closed: true},
			"sunday":    {Closed: true},
		},
	}
}

// LandingHero is the above-the-fold section of the landing page.
type LandingHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"ctaText"`
}

// LandingService is one marketed service entry.
type LandingService struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// LandingContact holds the public contact block.
type LandingContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// FooterLink is a single footer navigation entry.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LandingFooter holds footer text and links.
type LandingFooter struct {
	Text  string       `json:"text"`
	Links []FooterLink `json:"links,omitempty"`
}

// LandingContent is the singleton marketing-page document.
type LandingContent struct {
	Hero     LandingHero      `json:"hero"`
	Services []LandingService `json:"services"`
	Contact  LandingContact   `json:"contact"`
	Footer   LandingFooter    `json:"footer"`
}

// DefaultLandingContent is served when no document has been saved.
func DefaultLandingContent() LandingContent {
	return LandingContent{
		Hero: LandingHero{
			Title:    "Welcome to Our Service",
			Subtitle: "We provide exceptional support for your business needs",
			CTAText:  "Get Started",
		},
		Services: []LandingService{},
		Contact:  LandingContact{Email: "contact@example.com"},
		Footer:   LandingFooter{Text: "All rights reserved"},
	}
}

// SEOConfig is the singleton search-metadata document.
type SEOConfig struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	OGImage        string         `json:"ogImage,omitempty"`
	CanonicalURL   string         `json:"canonicalUrl,omitempty"`
	StructuredData map[string]any `json:"structuredData,omitempty"`
}

// DefaultSEOConfig is served when no document has been saved.
func DefaultSEOConfig() SEOConfig {
	return SEOConfig{
		Title:       "SmallBizNiz LLC - Business Solutions",
		Description: "Professional business solutions and support services",
	}
}

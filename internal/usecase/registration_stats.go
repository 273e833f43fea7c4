package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// manausZone is America/Manaus (UTC-4, no daylight saving). Day, week and
// month boundaries of the dashboard are taken in this zone.
var manausZone = time.FixedZone("America/Manaus", -4*60*60)

// ChartPoint is one bar/slice of a dashboard chart.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HealthAlerts counts registrations that need attention from the staff.
type HealthAlerts struct {
	DietaryRestrictions int `json:"dietary_restrictions"`
	PhysicalLimitations int `json:"physical_limitations"`
	UnderTreatment      int `json:"under_treatment"`
}

// Stats aggregates the admin dashboard.
type Stats struct {
	Total               int             `json:"total"`
	NormalRegistrations int             `json:"normal_registrations"`
	Adoptees            int             `json:"adoptees"`
	Confirmed           int             `json:"confirmed"`
	Pending             int             `json:"pending"`
	Revenue             decimal.Decimal `json:"revenue" swaggertype:"string" example:"1060.00"`
	NewToday            int             `json:"new_today"`
	NewThisWeek         int             `json:"new_this_week"`
	NewThisMonth        int             `json:"new_this_month"`

	ByGender             []ChartPoint `json:"by_gender"`
	ByParticipationType  []ChartPoint `json:"by_participation_type"`
	ByPaymentMethod      []ChartPoint `json:"by_payment_method"`
	ByRegistrationValue  []ChartPoint `json:"by_registration_value"`
	ByShirtSize          []ChartPoint `json:"by_shirt_size"`
	ByAge                []ChartPoint `json:"by_age"`
	ByImageAuthorization []ChartPoint `json:"by_image_authorization"`

	Alerts HealthAlerts `json:"alerts"`
}

var (
	participationLabels = map[string]string{"member": "Membro IPManaus", "guest": "Convidado", "congregation": "Congregação"}
	paymentMethodLabels = map[entities.PaymentMethod]string{
		entities.PaymentMethodPresencial: "Presencial - À vista",
		entities.PaymentMethodCarne:      "Carnê-Parcelamento",
		entities.PaymentMethodPix:        "PIX",
	}
)

// ComputeStats builds the dashboard from the full registration list. Revenue
// only counts confirmed registrations.
func ComputeStats(items []entities.Registration, now time.Time) Stats {
	s := Stats{Revenue: decimal.Zero}

	now = now.In(manausZone)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, manausZone)
	weekStart := todayStart.AddDate(0, 0, -int(todayStart.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, manausZone)

	gender := map[string]int{}
	participation := map[string]int{}
	method := map[string]int{}
	value := map[string]int{}
	shirt := map[string]int{}
	age := map[string]int{}
	image := map[string]int{}

	for _, r := range items {
		if r.PaymentConfirmed() {
			s.Confirmed++
			s.Revenue = s.Revenue.Add(r.Payment.TotalPaid)
		}
		if r.IsAdoptee {
			s.Adoptees++
		}

		if created := r.CreatedAt; !created.IsZero() && !created.After(now) {
			if !created.Before(todayStart) {
				s.NewToday++
			}
			if !created.Before(weekStart) {
				s.NewThisWeek++
			}
			if !created.Before(monthStart) {
				s.NewThisMonth++
			}
		}

		d := r.Details
		if d.TeenGender == "female" {
			gender["Feminino"]++
		} else {
			gender["Masculino"]++
		}
		participation[labelOr(participationLabels, d.ParticipationType, "guest")]++
		if label, ok := paymentMethodLabels[r.Payment.Method]; ok {
			method[label]++
		} else {
			method["Outro"]++
		}
		value["R$ "+r.Fee.StringFixed(2)]++
		if d.ShirtSize == "" {
			shirt["N/A"]++
		} else {
			shirt[d.ShirtSize]++
		}
		if d.TeenAge > 0 {
			age[strconv.Itoa(d.TeenAge)+" anos"]++
		} else {
			age["N/A"]++
		}
		if d.ImageAndVoiceAuthorized {
			image["Autorizado"]++
		} else {
			image["Não Autorizado"]++
		}

		if d.HasDietaryRestrictions {
			s.Alerts.DietaryRestrictions++
		}
		if !d.CanDoPhysicalActivities {
			s.Alerts.PhysicalLimitations++
		}
		if d.IsUnderTreatment {
			s.Alerts.UnderTreatment++
		}
	}

	s.Total = len(items)
	s.NormalRegistrations = s.Total - s.Adoptees
	s.Pending = s.Total - s.Confirmed

	s.ByGender = chart(gender, byName)
	s.ByParticipationType = chart(participation, byName)
	s.ByPaymentMethod = chart(method, byName)
	s.ByRegistrationValue = chart(value, byName)
	s.ByShirtSize = chart(shirt, byName)
	s.ByAge = chart(age, byLeadingNumber)
	s.ByImageAuthorization = chart(image, byName)
	return s
}

func labelOr(labels map[string]string, key, fallback string) string {
	if key == "" {
		key = fallback
	}
	if label, ok := labels[key]; ok {
		return label
	}
	return "Outro"
}

func chart(counts map[string]int, less func(a, b ChartPoint) bool) []ChartPoint {
	out := make([]ChartPoint, 0, len(counts))
	for name, v := range counts {
		out = append(out, ChartPoint{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byName(a, b ChartPoint) bool { return a.Name < b.Name }

// byLeadingNumber orders "9 anos" before "12 anos"; non-numeric
// names go last.
func byLeadingNumber(a, b ChartPoint) bool {
	na, errA := strconv.Atoi(strings.Fields(a.Name + " x")[0])
	nb, errB := strconv.Atoi(strings.Fields(b.Name + " x")[0])
	switch {
	case errA != nil && errB != nil:
		return a.Name < b.Name
	case errA != nil:
		return false
	case errB != nil:
		return true
	}
	return na < nb
}

// Package forms turns submitted html form values into models.
package forms

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Daskott/dogcare/server/models"
)

// DATE_LAYOUT is the format of every date input i.e. year-month-day
const DATE_LAYOUT = "2006-01-02"

// ParseDate returns nil for an empty or malformed date, instead of an error
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	date, err := time.Parse(DATE_LAYOUT, value)
	if err != nil {
		return nil
	}

	return &date
}

// ParseInt returns nil for an empty or non-numeric value
func ParseInt(value string) *int {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}

	return &number
}

// FormatDate is the inverse of ParseDate
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(DATE_LAYOUT)
}

// BoardingIntake maps the fields of the kennel boarding form onto a record. Nothing is
// validated here beyond type conversion.
func BoardingIntake(form url.Values) *models.BoardingIntake {
	intake := &models.BoardingIntake{
		PetName:                    form.Get("pet_name"),
		Dob:                        ParseDate(form.Get("dob")),
		Age:                        ParseInt(form.Get("age")),
		Gender:                     form.Get("gender"),
		Breed:                      form.Get("breed"),
		VaccinationDetails:         form.Get("vaccination_details"),
		OwnerName:                  form.Get("owner_name"),
		AadharNumber:               form.Get("aadhar_number"),
		Address:                    form.Get("address"),
		Email:                      form.Get("email"),
		ContactNumber:              form.Get("contact_number"),
		EmergencyContactName:       form.Get("emergency_contact_name"),
		EmergencyContactNumber:     form.Get("emergency_contact_number"),
		VetClinicName:              form.Get("vet_clinic_name"),
		VetContactNumber:           form.Get("vet_contact_number"),
		BoardingType:               form.Get("boarding_type"),
		CheckInDate:                ParseDate(form.Get("check_in_date")),
		CheckOutDate:               ParseDate(form.Get("check_out_date")),
		OtherInformation:           form.Get("other_information"),
		MedicationName:             form.Get("medication_name"),
		Dosage:                     form.Get("dosage"),
		AdministrationInstructions: form.Get("administration_instructions"),
		LastHeatCycleDate:          ParseDate(form.Get("last_heat_cycle_date")),
		Temperament:                ParseInt(form.Get("temperament")),
		Socializing:                form.Get("socializing"),
		SeparationAnxiety:          form.Get("separation_anxiety"),
		BathSpecifications:         form.Get("bath_specifications"),
		SwimmingSpecifications:     form.Get("swimming_specifications"),
	}

	intake.SetMeals(form["breakfast"], form["lunch"], form["dinner"])

	return intake
}

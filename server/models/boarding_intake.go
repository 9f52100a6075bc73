package models

import "time"

// MEALS_SEPARATOR joins the selected options of each meal into a single column
const MEALS_SEPARATOR = ","

// BoardingIntake is a kennel boarding form as submitted. It is never updated.
type BoardingIntake struct {
	BaseModel
	PetName                    string     `json:"pet_name" validate:"required" gorm:"size:100;not null"`
	Dob                        *time.Time `json:"dob" gorm:"type:date"`
	Age                        *int       `json:"age"`
	Gender                     string     `json:"gender" gorm:"size:10"`
	Breed                      string     `json:"breed" gorm:"size:100"`
	VaccinationDetails         string     `json:"vaccination_details" gorm:"type:text"`
	OwnerName                  string     `json:"owner_name" validate:"required" gorm:"size:100;not null"`
	AadharNumber               string     `json:"aadhar_number" gorm:"size:20"`
	Address                    string     `json:"address" gorm:"type:text"`
	Email                      string     `json:"email" gorm:"size:100"`
	ContactNumber              string     `json:"contact_number" gorm:"size:15"`
	EmergencyContactName       string     `json:"emergency_contact_name" gorm:"size:100"`
	EmergencyContactNumber     string     `json:"emergency_contact_number" gorm:"size:15"`
	VetClinicName              string     `json:"vet_clinic_name" gorm:"size:100"`
	VetContactNumber           string     `json:"vet_contact_number" gorm:"size:15"`
	BoardingType               string     `json:"boarding_type" gorm:"size:50"`
	CheckInDate                *time.Time `json:"check_in_date" gorm:"type:date"`
	CheckOutDate               *time.Time `json:"check_out_date" gorm:"type:date"`
	Breakfast                  string     `json:"breakfast" gorm:"size:100"`
	Lunch                      string     `json:"lunch" gorm:"size:100"`
	Dinner                     string     `json:"dinner" gorm:"size:100"`
	OtherInformation           string     `json:"other_information" gorm:"type:text"`
	MedicationName             string     `json:"medication_name" gorm:"size:100"`
	Dosage                     string     `json:"dosage" gorm:"size:100"`
	AdministrationInstructions string     `json:"administration_instructions" gorm:"type:text"`
	LastHeatCycleDate          *time.Time `json:"last_heat_cycle_date" gorm:"type:date"`
	Temperament                *int       `json:"temperament"`
	Socializing                string     `json:"socializing" gorm:"size:100"`
	SeparationAnxiety          string     `json:"separation_anxiety" gorm:"size:100"`
	BathSpecifications         string     `json:"bath_specifications" gorm:"type:text"`
	SwimmingSpecifications     string     `json:"swimming_specifications" gorm:"type:text"`
}

func (intake *BoardingIntake) SetMeals(breakfast, lunch, dinner []string) {
	intake.Breakfast = joinList(breakfast, MEALS_SEPARATOR)
	intake.Lunch = joinList(lunch, MEALS_SEPARATOR)
	intake.Dinner = joinList(dinner, MEALS_SEPARATOR)
}

func (intake *BoardingIntake) BreakfastList() []string {
	return splitList(intake.Breakfast, MEALS_SEPARATOR)
}

func (intake *BoardingIntake) LunchList() []string {
	return splitList(intake.Lunch, MEALS_SEPARATOR)
}

func (intake *BoardingIntake) DinnerList() []string {
	return splitList(intake.Dinner, MEALS_SEPARATOR)
}

func CreateBoardingIntake(intake *BoardingIntake) error {
	return translateError(db.Create(intake).Error, "CreateBoardingIntake")
}

func FindBoardingIntake(id interface{}) (*BoardingIntake, error) {
	intake := BoardingIntake{}
	err := db.First(&intake, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "FindBoardingIntake")
	}

	return &intake, nil
}

func CountBoardingIntakes() (int64, error) {
	var count int64
	err := db.Model(&BoardingIntake{}).Count(&count).Error
	return count, translateError(err, "CountBoardingIntakes")
}

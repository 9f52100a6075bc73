package models

import "gorm.io/gorm"

const (
	CARETAKER_USER_TYPE = "caretaker"
	CUSTOMER_USER_TYPE  = "customer"
)

type Owner struct {
	BaseModel
	PhoneNumber string `json:"phone_number" validate:"required" gorm:"size:15;not null;unique"`
	UserType    string `json:"user_type" validate:"required,oneof=caretaker customer" gorm:"size:10;not null"`
	Dogs        []Dog  `json:"dogs,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (owner *Owner) IsCaretaker() bool {
	return owner.UserType == CARETAKER_USER_TYPE
}

// AddDog links 'dog' to owner & saves it
func (owner *Owner) AddDog(dog *Dog) error {
	dog.OwnerID = owner.ID
	dog.Owner = nil

	return translateError(db.Create(dog).Error, "AddDog")
}

// CreateOwner inserts 'owner' in its own transaction. If the phone number is taken,
// the transaction is rolled back & ErrDuplicateKey is returned.
func CreateOwner(owner *Owner) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(owner).Error
	})

	return translateError(err, "CreateOwner")
}

// FindOwner returns the owner matching both 'phoneNumber' & 'userType'
func FindOwner(phoneNumber, userType string) (*Owner, error) {
	owner := Owner{}
	err := db.First(&owner, "phone_number = ? AND user_type = ?", phoneNumber, userType).Error
	if err != nil {
		return nil, translateError(err, "FindOwner")
	}

	return &owner, nil
}

func FindOwnerByPhoneNumber(phoneNumber string) (*Owner, error) {
	owner := Owner{}
	err := db.First(&owner, "phone_number = ?", phoneNumber).Error
	if err != nil {
		return nil, translateError(err, "FindOwnerByPhoneNumber")
	}

	return &owner, nil
}

func CountOwners() (int64, error) {
	var count int64
	err := db.Model(&Owner{}).Count(&count).Error
	return count, translateError(err, "CountOwners")
}

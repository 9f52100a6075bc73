package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateOwner(t *testing.T) {
	InitializeTestDb()

	err := CreateOwner(&Owner{PhoneNumber: "+12345678900", UserType: CUSTOMER_USER_TYPE})
	assert.Nil(t, err, "Should create owner with a new phone number")

	count, err := CountOwners()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)

	err = CreateOwner(&Owner{PhoneNumber: "+12345678900", UserType: CARETAKER_USER_TYPE})
	assert.True(t, errors.Is(err, ErrDuplicateKey), "Expected ErrDuplicateKey, got %v", err)

	count, err = CountOwners()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count, "Owner table should be unchanged after a duplicate signup")
}

func TestFindOwner(t *testing.T) {
	InitializeTestDb()

	caretaker := &Owner{PhoneNumber: "5550001", UserType: CARETAKER_USER_TYPE}
	assert.Nil(t, CreateOwner(caretaker))

	testCases := []struct {
		description string
		phoneNumber string
		userType    string
		found       bool
	}{
		{"Should find owner with matching phone & type", "5550001", CARETAKER_USER_TYPE, true},
		{"Should NOT find owner with a different type", "5550001", CUSTOMER_USER_TYPE, false},
		{"Should NOT find owner with an unknown phone", "5550002", CARETAKER_USER_TYPE, false},
	}

	for _, tc := range testCases {
		owner, err := FindOwner(tc.phoneNumber, tc.userType)
		if tc.found {
			assert.Nil(t, err, tc.description)
			assert.Equal(t, caretaker.ID, owner.ID, tc.description)
			assert.True(t, owner.IsCaretaker(), tc.description)
			continue
		}

		assert.Nil(t, owner, tc.description)
		assert.True(t, errors.Is(err, ErrNotFound), tc.description)
	}
}

func TestFindOwnerByPhoneNumber(t *testing.T) {
	InitializeTestDb()

	assert.Nil(t, CreateOwner(&Owner{PhoneNumber: "5550001", UserType: CUSTOMER_USER_TYPE}))

	owner, err := FindOwnerByPhoneNumber("5550001")
	assert.Nil(t, err)
	assert.Equal(t, CUSTOMER_USER_TYPE, owner.UserType)

	owner, err = FindOwnerByPhoneNumber("5550009")
	assert.Nil(t, owner)
	assert.True(t, errors.Is(err, ErrNotFound))
}

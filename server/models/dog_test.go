package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOwner(t *testing.T, phoneNumber, userType string) *Owner {
	owner := &Owner{PhoneNumber: phoneNumber, UserType: userType}
	require.Nil(t, CreateOwner(owner))
	return owner
}

func TestAddDog(t *testing.T) {
	InitializeTestDb()

	owner := createTestOwner(t, "5550001", CUSTOMER_USER_TYPE)

	dog := &Dog{Name: "Rex"}
	err := owner.AddDog(dog)
	assert.Nil(t, err)
	assert.NotZero(t, dog.ID)
	assert.Equal(t, owner.ID, dog.OwnerID)

	dogs, err := AllDogs()
	assert.Nil(t, err)
	assert.Len(t, dogs, 1)
	assert.Equal(t, "5550001", dogs[0].Owner.PhoneNumber)
}

func TestAddDogWithUnknownOwnerFails(t *testing.T) {
	InitializeTestDb()

	ghost := &Owner{BaseModel: BaseModel{ID: 42}}
	err := ghost.AddDog(&Dog{Name: "Rex"})
	assert.NotNil(t, err, "Foreign key on owner_id should reject the insert")

	dogs, err := AllDogs()
	assert.Nil(t, err)
	assert.Empty(t, dogs)
}

func TestDogsByOwner(t *testing.T) {
	InitializeTestDb()

	alice := createTestOwner(t, "5550001", CUSTOMER_USER_TYPE)
	bob := createTestOwner(t, "5550002", CUSTOMER_USER_TYPE)

	require.Nil(t, alice.AddDog(&Dog{Name: "Rex"}))
	require.Nil(t, alice.AddDog(&Dog{Name: "Fido"}))

	dogs, err := DogsByOwner(alice.ID)
	assert.Nil(t, err)
	assert.Len(t, dogs, 2)
	assert.Equal(t, "Rex", dogs[0].Name)
	assert.Equal(t, "Fido", dogs[1].Name)

	dogs, err = DogsByOwner(bob.ID)
	assert.Nil(t, err, "An owner with no dogs is not an error")
	assert.NotNil(t, dogs)
	assert.Empty(t, dogs)
}

func TestUpdateCare(t *testing.T) {
	InitializeTestDb()

	owner := createTestOwner(t, "5550001", CUSTOMER_USER_TYPE)
	dog := &Dog{Name: "Rex"}
	require.Nil(t, owner.AddDog(dog))

	err := dog.UpdateCare("08:00, 18:00", []string{"kibble", "chicken"}, "07:30")
	assert.Nil(t, err)

	stored, err := FindDog(dog.ID)
	assert.Nil(t, err)
	assert.Equal(t, "08:00, 18:00", stored.EatingTime)
	assert.Equal(t, "kibble, chicken", stored.FoodTypes)
	assert.Equal(t, []string{"kibble", "chicken"}, stored.FoodTypeList())
	assert.Equal(t, "07:30", stored.WashroomTime)

	assert.Equal(t, "Rex", stored.Name, "Name should be untouched")
	assert.Equal(t, owner.ID, stored.OwnerID, "Owner should be untouched")
}

func TestUpdateCareWithNoFoodTypes(t *testing.T) {
	InitializeTestDb()

	owner := createTestOwner(t, "5550001", CUSTOMER_USER_TYPE)
	dog := &Dog{Name: "Rex"}
	require.Nil(t, owner.AddDog(dog))
	require.Nil(t, dog.UpdateCare("noon", []string{"kibble"}, "night"))

	assert.Nil(t, dog.UpdateCare("", nil, ""))

	stored, err := FindDog(dog.ID)
	assert.Nil(t, err)
	assert.Equal(t, "", stored.EatingTime)
	assert.Equal(t, []string{}, stored.FoodTypeList())
	assert.Equal(t, "", stored.WashroomTime)
}

func TestFindDogNotFound(t *testing.T) {
	InitializeTestDb()

	dog, err := FindDog(999)
	assert.Nil(t, dog)
	assert.True(t, errors.Is(err, ErrNotFound))
}

package models

// FOOD_TYPES_SEPARATOR joins the food types of a dog into a single column
const FOOD_TYPES_SEPARATOR = ", "

var careFields = []string{"eating_time", "food_types", "washroom_time"}

type Dog struct {
	BaseModel
	Name         string `json:"name" validate:"required" gorm:"size:50;not null"`
	OwnerID      uint   `json:"owner_id" gorm:"not null"`
	Owner        *Owner `json:"owner,omitempty"`
	EatingTime   string `json:"eating_time" gorm:"size:100"`
	FoodTypes    string `json:"food_types" gorm:"size:100"`
	WashroomTime string `json:"washroom_time" gorm:"size:100"`
}

// UpdateCare overwrites only the care instructions of a dog
func (dog *Dog) UpdateCare(eatingTime string, foodTypes []string, washroomTime string) error {
	dog.EatingTime = eatingTime
	dog.FoodTypes = joinList(foodTypes, FOOD_TYPES_SEPARATOR)
	dog.WashroomTime = washroomTime

	err := db.Model(&Dog{}).Where("id = ?", dog.ID).Select(careFields).Updates(map[string]interface{}{
		"eating_time":   dog.EatingTime,
		"food_types":    dog.FoodTypes,
		"washroom_time": dog.WashroomTime,
	}).Error

	return translateError(err, "UpdateCare")
}

func (dog *Dog) FoodTypeList() []string {
	return splitList(dog.FoodTypes, FOOD_TYPES_SEPARATOR)
}

func FindDog(id interface{}) (*Dog, error) {
	dog := Dog{}
	err := db.Preload("Owner").First(&dog, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "FindDog")
	}

	return &dog, nil
}

// AllDogs returns every dog, with its owner
func AllDogs() ([]Dog, error) {
	dogs := []Dog{}
	err := db.Preload("Owner").Order("id").Find(&dogs).Error
	if err != nil {
		return nil, translateError(err, "AllDogs")
	}

	return dogs, nil
}

func DogsByOwner(ownerID uint) ([]Dog, error) {
	dogs := []Dog{}
	err := db.Where("owner_id = ?", ownerID).Order("id").Find(&dogs).Error
	if err != nil {
		return nil, translateError(err, "DogsByOwner")
	}

	return dogs, nil
}

package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Daskott/dogcare/server/flash"
	"github.com/Daskott/dogcare/server/forms"
	"github.com/Daskott/dogcare/server/models"
	"github.com/Daskott/dogcare/server/views"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var (
	foodTypeOptions = []string{"Dry food", "Wet food", "Raw food", "Home cooked", "Treats"}
	mealOptions     = []string{"Dry food", "Wet food", "Boiled chicken", "Rice", "Eggs", "Curd"}
	meals           = []string{"breakfast", "lunch", "dinner"}
)

func (h *handler) index(rw http.ResponseWriter, r *http.Request) {
	h.render(rw, r, http.StatusOK, "index", views.Data{})
}

// ---------------------------------------------------------------------------------//
// Identity
// --------------------------------------------------------------------------------//

func (h *handler) loginForm(rw http.ResponseWriter, r *http.Request) {
	h.render(rw, r, http.StatusOK, "login", views.Data{"PhoneNumber": ""})
}

func (h *handler) logIn(rw http.ResponseWriter, r *http.Request) {
	if !parseForm(h, rw, r) {
		return
	}

	phoneNumber := r.PostFormValue("phone_number")
	owner, err := models.FindOwner(phoneNumber, r.PostFormValue("user_type"))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		h.renderServerError(rw, r, err)
		return
	}

	if owner != nil {
		switch owner.UserType {
		case models.CARETAKER_USER_TYPE:
			http.Redirect(rw, r, "/caretaker_dashboard", http.StatusFound)
			return
		case models.CUSTOMER_USER_TYPE:
			http.Redirect(rw, r, "/customer_dashboard/"+url.PathEscape(phoneNumber), http.StatusFound)
			return
		}
	}

	h.render(rw, r, http.StatusOK, "login", views.Data{"PhoneNumber": phoneNumber},
		flash.Error("Invalid login credentials"))
}

func (h *handler) signupForm(rw http.ResponseWriter, r *http.Request) {
	h.render(rw, r, http.StatusOK, "signup", views.Data{"PhoneNumber": ""})
}

func (h *handler) signUp(rw http.ResponseWriter, r *http.Request) {
	if !parseForm(h, rw, r) {
		return
	}

	owner := &models.Owner{
		PhoneNumber: r.PostFormValue("phone_number"),
		UserType:    r.PostFormValue("user_type"),
	}
	data := views.Data{"PhoneNumber": owner.PhoneNumber}

	if err := validate.Struct(owner); err != nil {
		h.render(rw, r, http.StatusOK, "signup", data, validationFlashes(err)...)
		return
	}

	err := models.CreateOwner(owner)
	if errors.Is(err, models.ErrDuplicateKey) {
		h.render(rw, r, http.StatusOK, "signup", data, flash.Error("Phone number already exists."))
		return
	}
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.redirectWithFlash(rw, r, "/login", flash.Success("Signup successful, please login."))
}

// ---------------------------------------------------------------------------------//
// Dog registry
// --------------------------------------------------------------------------------//

func (h *handler) caretakerDashboard(rw http.ResponseWriter, r *http.Request) {
	dogs, err := models.AllDogs()
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.render(rw, r, http.StatusOK, "caretaker_dashboard", views.Data{"Title": "Caretaker dashboard", "Dogs": dogs})
}

func (h *handler) addDog(rw http.ResponseWriter, r *http.Request) {
	if !parseForm(h, rw, r) {
		return
	}

	name := r.PostFormValue("name")
	phoneNumber := strings.TrimSpace(r.PostFormValue("phone_number"))

	if strings.TrimSpace(name) == "" {
		h.redirectWithFlash(rw, r, "/caretaker_dashboard", flash.Error("Dog name is required"))
		return
	}

	owner, err := models.FindOwnerByPhoneNumber(phoneNumber)
	if errors.Is(err, models.ErrNotFound) {
		h.redirectWithFlash(rw, r, "/caretaker_dashboard", flash.Error("Owner not found"))
		return
	}
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	if err = owner.AddDog(&models.Dog{Name: name}); err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.redirectWithFlash(rw, r, "/caretaker_dashboard", flash.Success("Dog added successfully."))
}

func (h *handler) updateDogForm(rw http.ResponseWriter, r *http.Request) {
	dog, ok := h.findDog(rw, r)
	if !ok {
		return
	}

	selected := make(map[string]bool)
	options := append([]string{}, foodTypeOptions...)
	for _, foodType := range dog.FoodTypeList() {
		if !contains(options, foodType) {
			options = append(options, foodType)
		}
		selected[foodType] = true
	}

	h.render(rw, r, http.StatusOK, "update_dog", views.Data{
		"Title":             "Update " + dog.Name,
		"Dog":               dog,
		"FoodTypeOptions":   options,
		"SelectedFoodTypes": selected,
	})
}

func (h *handler) updateDog(rw http.ResponseWriter, r *http.Request) {
	dog, ok := h.findDog(rw, r)
	if !ok {
		return
	}

	if !parseForm(h, rw, r) {
		return
	}

	err := dog.UpdateCare(r.PostFormValue("eating_time"), r.PostForm["food_types"], r.PostFormValue("washroom_time"))
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.redirectWithFlash(rw, r, "/caretaker_dashboard", flash.Success("Dog information updated successfully."))
}

// findDog loads the dog in the route, or renders a 404 when there's none
func (h *handler) findDog(rw http.ResponseWriter, r *http.Request) (*models.Dog, bool) {
	dog, err := models.FindDog(mux.Vars(r)["dog_id"])
	if errors.Is(err, models.ErrNotFound) {
		h.renderError(rw, r, http.StatusNotFound, "Dog not found")
		return nil, false
	}
	if err != nil {
		h.renderServerError(rw, r, err)
		return nil, false
	}

	return dog, true
}

// ---------------------------------------------------------------------------------//
// Customer view
// --------------------------------------------------------------------------------//

func (h *handler) customerDashboard(rw http.ResponseWriter, r *http.Request) {
	phoneNumber := mux.Vars(r)["phone_number"]

	owner, err := models.FindOwnerByPhoneNumber(phoneNumber)
	if errors.Is(err, models.ErrNotFound) {
		h.renderError(rw, r, http.StatusNotFound, "Owner not found")
		return
	}
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	dogs, err := models.DogsByOwner(owner.ID)
	if err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.render(rw, r, http.StatusOK, "customer_dashboard", views.Data{
		"Title":       "My dogs",
		"PhoneNumber": phoneNumber,
		"Dogs":        dogs,
	})
}

// ---------------------------------------------------------------------------------//
// Boarding intake
// --------------------------------------------------------------------------------//

func (h *handler) boardingForm(rw http.ResponseWriter, r *http.Request) {
	h.renderBoardingForm(rw, r)
}

func (h *handler) submitBoardingForm(rw http.ResponseWriter, r *http.Request) {
	if !parseForm(h, rw, r) {
		return
	}

	intake := forms.BoardingIntake(r.PostForm)
	if err := validate.Struct(intake); err != nil {
		h.renderBoardingForm(rw, r, validationFlashes(err)...)
		return
	}

	if err := models.CreateBoardingIntake(intake); err != nil {
		h.renderServerError(rw, r, err)
		return
	}

	h.redirectWithFlash(rw, r, "/boarding_form", flash.Success("Boarding form submitted successfully!"))
}

func (h *handler) renderBoardingForm(rw http.ResponseWriter, r *http.Request, extra ...flash.Message) {
	h.render(rw, r, http.StatusOK, "boarding_form", views.Data{
		"Title":       "Kennel boarding",
		"Meals":       meals,
		"MealOptions": mealOptions,
	}, extra...)
}

package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/Daskott/dogcare/server/backup"
	"github.com/Daskott/dogcare/server/flash"
	"github.com/Daskott/dogcare/server/views"
	"github.com/Daskott/dogcare/shared"
	"github.com/Daskott/dogcare/utils"
	"github.com/go-playground/validator"
)

var validate = newValidator()

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

// render writes 'page' with 'status', along with pending flashes & 'extra' ones
func (h *handler) render(rw http.ResponseWriter, r *http.Request, status int, page string, data views.Data, extra ...flash.Message) {
	data["Flashes"] = append(h.flashes.Pop(rw, r), extra...)

	buf := new(bytes.Buffer)
	if err := h.views.Render(buf, page, data); err != nil {
		logg.Error(err)
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)
	buf.WriteTo(rw)
}

func (h *handler) renderError(rw http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusBadRequest {
		logg.Info(message)
	}

	h.render(rw, r, status, "error", views.Data{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
}

func (h *handler) renderServerError(rw http.ResponseWriter, r *http.Request, err error) {
	logg.Error(err)
	h.render(rw, r, http.StatusInternalServerError, "error", views.Data{
		"Title":   http.StatusText(http.StatusInternalServerError),
		"Status":  http.StatusInternalServerError,
		"Message": "Sorry an application error has occured. Please try again later",
	})
}

func (h *handler) redirectWithFlash(rw http.ResponseWriter, r *http.Request, url string, msg flash.Message) {
	if err := h.flashes.Add(rw, r, msg); err != nil {
		logg.Error(err)
	}
	http.Redirect(rw, r, url, http.StatusFound)
}

func parseForm(h *handler, rw http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.renderError(rw, r, http.StatusBadRequest, fmt.Sprintf("Unable to read form: %v", err))
		return false
	}
	return true
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their form name i.e. 'phone_number' instead of 'PhoneNumber'
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validationFlashes turns validation errors into one user facing message per field
func validationFlashes(err error) []flash.Message {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []flash.Message{flash.Error(err.Error())}
	}

	messages := []flash.Message{}
	for _, fieldErr := range validationErrors {
		field := humanize(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, flash.Error(fmt.Sprintf("%s is required", field)))
		case "oneof":
			messages = append(messages, flash.Error(
				fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))))
		default:
			messages = append(messages, flash.Error(fmt.Sprintf("%s is invalid", field)))
		}
	}

	return messages
}

// humanize turns 'phone_number' into 'Phone number'
func humanize(field string) string {
	words := strings.ReplaceAll(field, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Dogcare server is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(backups *backup.Backup, server *http.Server) {
	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Dogcare server shutdown failed:%+s", err)
	}

	// Take a final backup once no request can write to the db
	if backups != nil {
		if err := backups.Stop(); err != nil {
			logg.Error(err)
		}
	}

	logg.Infof("Dogcare server stopped properly")
}

// dbRootDirectory is 'sqlite.dir' when set, otherwise the folder to store dogcare data in.
// Or logs an error message and then calls os.Exit if it's unable to create it.
func dbRootDirectory(config shared.SqliteConfig, devMode bool) string {
	if config.Dir != "" {
		fatalOnError(utils.CreateDirIfNotExist(config.Dir))
		return config.Dir
	}

	return configDirectory(devMode)
}

// configDirectory retrieves the directory to store dogcare data
func configDirectory(devMode bool) string {
	// Use 'dogcare' folder in home directory for prod
	configDir, err := utils.HomeSubDir("dogcare")
	fatalOnError(err)

	// Use 'dev' folder in current directory for dev mode
	if devMode {
		configDir, err = filepath.Abs("dev")
		fatalOnError(err)
	}

	err = utils.CreateDirIfNotExist(configDir)
	fatalOnError(err)

	return configDir
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}

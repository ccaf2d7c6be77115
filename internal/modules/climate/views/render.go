package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
)

var homeTmpl *template.Template

// loadTemplatesFromFS loads the home page template from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	homeTmpl, err = template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded templates. Call during startup before serving
// requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

type Route struct {
	Path        string
	Description string
}

type HomeData struct {
	Title  string
	Routes []Route
}

// NewHomeData lists the API routes mounted under prefix.
func NewHomeData(prefix string) HomeData {
	return HomeData{
		Title: "Welcome to the Hawaii Climate API",
		Routes: []Route{
			{Path: prefix + "/precipitation", Description: "precipitation for the last year of data, by date"},
			{Path: prefix + "/stations", Description: "all weather stations"},
			{Path: prefix + "/tobs", Description: "temperature observations of the most active station for the last year of data"},
			{Path: prefix + "/latest_date", Description: "the most recent observation date"},
			{Path: prefix + "/<start>", Description: "TMIN, TAVG and TMAX from start onwards"},
			{Path: prefix + "/<start>/<end>", Description: "TMIN, TAVG and TMAX from start through end"},
		},
	}
}

func RenderHome(w io.Writer, data HomeData) error {
	if homeTmpl == nil {
		return errors.New("home template not loaded: call views.LoadTemplates during startup")
	}
	return homeTmpl.ExecuteTemplate(w, "index.html", data)
}

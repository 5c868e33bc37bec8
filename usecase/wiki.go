package usecase

import (
	"strings"

	"registro/model"
)

// WikiForm is the wiki command form input boundary.
type WikiForm struct {
	Title       string `json:"title"`
	Vendor      string `json:"vendor"`
	DeviceType  string `json:"device_type"`
	Model       string `json:"model"`
	Context     string `json:"context"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

type WikiDomain struct {
	Store *Store[model.WikiCommand]
	Form  *FormController[model.WikiCommand, WikiForm]
}

func NewWikiDomain(adapter Adapter[model.WikiCommand]) *WikiDomain {
	store := NewStore("wiki_commands", adapter)
	return &WikiDomain{
		Store: store,
		Form: &FormController[model.WikiCommand, WikiForm]{
			store:  store,
			build:  buildWikiCommand,
			merge:  mergeWikiCommand,
			formOf: wikiForm,
			label:  func(w model.WikiCommand) string { return w.Title },
		},
	}
}

func buildWikiCommand(form WikiForm) (model.WikiCommand, error) {
	entry := model.WikiCommand{
		Title:       strings.TrimSpace(form.Title),
		Vendor:      strings.TrimSpace(form.Vendor),
		DeviceType:  strings.TrimSpace(form.DeviceType),
		Model:       strings.TrimSpace(form.Model),
		Context:     strings.TrimSpace(form.Context),
		Command:     strings.TrimSpace(form.Command),
		Description: strings.TrimSpace(form.Description),
		Tags:        NormalizeTags(form.Tags),
	}

	if entry.Title == "" || entry.Vendor == "" || entry.DeviceType == "" || entry.Command == "" {
		return model.WikiCommand{}, validationf("title, vendor, device type and command are required")
	}
	return entry, nil
}

func mergeWikiCommand(existing, candidate model.WikiCommand) model.WikiCommand {
	existing.Title = candidate.Title
	existing.Vendor = candidate.Vendor
	existing.DeviceType = candidate.DeviceType
	existing.Model = candidate.Model
	existing.Context = candidate.Context
	existing.Command = candidate.Command
	existing.Description = candidate.Description
	existing.Tags = candidate.Tags
	return existing
}

func wikiForm(w model.WikiCommand) WikiForm {
	return WikiForm{
		Title:       w.Title,
		Vendor:      w.Vendor,
		DeviceType:  w.DeviceType,
		Model:       w.Model,
		Context:     w.Context,
		Command:     w.Command,
		Description: w.Description,
		Tags:        strings.Join(w.Tags, ", "),
	}
}

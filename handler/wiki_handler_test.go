package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"registro/repository"
	"registro/usecase"

	"github.com/gin-gonic/gin"
)

func newWikiRouter(t *testing.T) (*gin.Engine, *usecase.WikiDomain) {
	t.Helper()

	fs, err := repository.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	domain := usecase.NewWikiDomain(repository.NewLocalWikiAdapter(fs))

	router := gin.New()
	wiki := router.Group("/api/wiki")
	wiki.GET("", func(c *gin.Context) { ListWikiCommandsHandler(c, domain) })
	wiki.GET("/vendors", func(c *gin.Context) { WikiVendorsHandler(c, domain) })
	wiki.POST("", func(c *gin.Context) { SubmitWikiCommandHandler(c, domain) })
	wiki.PUT("/:id", func(c *gin.Context) { UpdateWikiCommandHandler(c, domain) })
	wiki.GET("/:id/edit", func(c *gin.Context) { EditWikiCommandHandler(c, domain) })
	wiki.POST("/form/clear", func(c *gin.Context) { ClearWikiFormHandler(c, domain) })
	wiki.DELETE("/:id", func(c *gin.Context) { DeleteWikiCommandHandler(c, domain) })

	return router, domain
}

type wikiPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Vendor     string `json:"vendor"`
	DeviceType string `json:"device_type"`
	Command    string `json:"command"`
	Edited     bool   `json:"edited"`
}

func createWikiCommand(t *testing.T, router *gin.Engine, body string) wikiPayload {
	t.Helper()

	status, resp := doJSON(t, router, http.MethodPost, "/api/wiki", body)
	if status != http.StatusCreated {
		t.Fatalf("POST /api/wiki = %d (%s), want 201", status, resp.Error)
	}
	var entry wikiPayload
	if err := json.Unmarshal(resp.Data, &entry); err != nil {
		t.Fatal(err)
	}
	return entry
}

func TestSubmitWikiCommandCreates(t *testing.T) {
	router, _ := newWikiRouter(t)

	entry := createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)
	if entry.ID == "" || entry.Vendor != "Cisco" || entry.Edited {
		t.Errorf("created entry = %+v", entry)
	}
}

func TestSubmitWikiCommandValidationFailure(t *testing.T) {
	router, domain := newWikiRouter(t)

	status, resp := doJSON(t, router, http.MethodPost, "/api/wiki",
		`{"title":"Show interfaces","vendor":"","device_type":"switch","command":"show run"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if resp.Error == "" {
		t.Error("expected an error message in the envelope")
	}
	if domain.Store.Len() != 0 {
		t.Error("rejected submit still stored a record")
	}
}

func TestListWikiCommandsVendorFilter(t *testing.T) {
	router, _ := newWikiRouter(t)

	createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)
	createWikiCommand(t, router,
		`{"title":"Display version","vendor":"Huawei","device_type":"router","command":"display version"}`)

	status, resp := doJSON(t, router, http.MethodGet, "/api/wiki?category=Huawei", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var list struct {
		Records []wikiPayload `json:"records"`
	}
	if err := json.Unmarshal(resp.Data, &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Records) != 1 || list.Records[0].Vendor != "Huawei" {
		t.Errorf("vendor filter returned %+v", list.Records)
	}
}

func TestWikiVendorsEndpoint(t *testing.T) {
	router, _ := newWikiRouter(t)

	createWikiCommand(t, router,
		`{"title":"a","vendor":"Cisco","device_type":"switch","command":"x"}`)
	createWikiCommand(t, router,
		`{"title":"b","vendor":"Huawei","device_type":"router","command":"x"}`)
	createWikiCommand(t, router,
		`{"title":"c","vendor":"Cisco","device_type":"firewall","command":"x"}`)

	status, resp := doJSON(t, router, http.MethodGet, "/api/wiki/vendors", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var vendors []string
	if err := json.Unmarshal(resp.Data, &vendors); err != nil {
		t.Fatal(err)
	}
	if len(vendors) != 2 || vendors[0] != "Cisco" || vendors[1] != "Huawei" {
		t.Errorf("vendors = %v, want [Cisco Huawei]", vendors)
	}
}

func TestEditThenSubmitUpdatesWikiCommand(t *testing.T) {
	router, domain := newWikiRouter(t)

	entry := createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)

	status, resp := doJSON(t, router, http.MethodGet, "/api/wiki/"+entry.ID+"/edit", "")
	if status != http.StatusOK {
		t.Fatalf("edit status = %d, want 200", status)
	}
	var edit struct {
		Form      usecase.WikiForm `json:"form"`
		EditingID string           `json:"editing_id"`
	}
	if err := json.Unmarshal(resp.Data, &edit); err != nil {
		t.Fatal(err)
	}
	if edit.EditingID != entry.ID || edit.Form.Command != "show ip interface brief" {
		t.Errorf("edit payload = %+v", edit)
	}

	status, resp = doJSON(t, router, http.MethodPost, "/api/wiki",
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show interfaces status"}`)
	if status != http.StatusOK {
		t.Fatalf("submit-in-edit status = %d, want 200", status)
	}
	var updated wikiPayload
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.ID != entry.ID || updated.Command != "show interfaces status" || !updated.Edited {
		t.Errorf("updated entry = %+v", updated)
	}
	if domain.Store.Len() != 1 || domain.Store.EditingID() != "" {
		t.Errorf("Len() = %d, EditingID() = %q after update", domain.Store.Len(), domain.Store.EditingID())
	}
}

func TestFailedWikiUpdateDoesNotLeakEditMode(t *testing.T) {
	router, domain := newWikiRouter(t)

	entry := createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)

	status, _ := doJSON(t, router, http.MethodPut, "/api/wiki/"+entry.ID, `{"title":`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if got := domain.Store.EditingID(); got != "" {
		t.Fatalf("EditingID() = %q after rejected PUT, want empty", got)
	}

	createWikiCommand(t, router,
		`{"title":"Display version","vendor":"Huawei","device_type":"router","command":"display version"}`)
	if domain.Store.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (create after failed PUT must not update)", domain.Store.Len())
	}
}

func TestUpdateWikiCommandByID(t *testing.T) {
	router, _ := newWikiRouter(t)

	entry := createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)

	status, resp := doJSON(t, router, http.MethodPut, "/api/wiki/"+entry.ID,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show interfaces"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d (%s), want 200", status, resp.Error)
	}

	status, _ = doJSON(t, router, http.MethodPut, "/api/wiki/missing",
		`{"title":"x","vendor":"Cisco","device_type":"switch","command":"x"}`)
	if status != http.StatusNotFound {
		t.Errorf("update of unknown id status = %d, want 404", status)
	}
}

func TestDeleteWikiCommandConfirmationGate(t *testing.T) {
	router, domain := newWikiRouter(t)

	entry := createWikiCommand(t, router,
		`{"title":"Show interfaces","vendor":"Cisco","device_type":"switch","command":"show ip interface brief"}`)

	_, resp := doJSON(t, router, http.MethodDelete, "/api/wiki/"+entry.ID, "")
	var result struct {
		Deleted bool `json:"deleted"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.Deleted || domain.Store.Len() != 1 {
		t.Fatal("delete without confirm=true removed the record")
	}

	_, resp = doJSON(t, router, http.MethodDelete, "/api/wiki/"+entry.ID+"?confirm=true", "")
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatal(err)
	}
	if !result.Deleted || domain.Store.Len() != 0 {
		t.Error("confirmed delete left the record in place")
	}
}

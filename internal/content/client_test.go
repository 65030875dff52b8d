// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ---------- Helpers ----------

// newStoreServer creates an httptest.Server that answers every query with the
// given result payload wrapped in the store's envelope. The last request is
// captured for assertions. The caller must call Close on the returned server.
func newStoreServer(t *testing.T, result string, lastReq **http.Request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastReq != nil {
			*lastReq = r
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":` + result + `}`))
	}))
}

func newTestClient(srv *httptest.Server) *Client {
	c := New(srv.URL, "testproj", "production", "2024-01-01")
	c.SetHTTPClient(srv.Client())
	return c
}

// ---------- Tests ----------

func TestFetchDecodesEnvelope(t *testing.T) {
	srv := newStoreServer(t, `[{"_id":"cat1","name":"CNC Machinery","slug":{"current":"cnc-machinery"}}]`, nil)
	defer srv.Close()

	cats, err := newTestClient(srv).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "CNC Machinery" || cats[0].Slug.Current != "cnc-machinery" {
		t.Errorf("got %+v, want one CNC Machinery category", cats)
	}
}

func TestFetchRequestShape(t *testing.T) {
	var lastReq *http.Request
	srv := newStoreServer(t, `null`, &lastReq)
	defer srv.Close()

	_, err := newTestClient(srv).CategoryBySlug(context.Background(), "lathes")
	if err != nil {
		t.Fatalf("CategoryBySlug: %v", err)
	}

	if lastReq == nil {
		t.Fatal("no request captured")
	}
	if want := "/v2024-01-01/data/query/production"; lastReq.URL.Path != want {
		t.Errorf("path = %q, want %q", lastReq.URL.Path, want)
	}
	q := lastReq.URL.Query()
	if !strings.Contains(q.Get("query"), `_type == "category"`) {
		t.Errorf("query param missing category filter: %q", q.Get("query"))
	}
	// Parameter values are sent JSON-encoded under $name.
	if got := q.Get("$slug"); got != `"lathes"` {
		t.Errorf("$slug = %q, want JSON-encoded string", got)
	}
}

func TestFetchNullResultMeansNotFound(t *testing.T) {
	srv := newStoreServer(t, `null`, nil)
	defer srv.Close()
	c := newTestClient(srv)

	cat, err := c.CategoryBySlug(context.Background(), "missing")
	if err != nil {
		t.Fatalf("CategoryBySlug: %v", err)
	}
	if cat != nil {
		t.Errorf("got %+v, want nil for missing category", cat)
	}

	m, err := c.MachineBySlugs(context.Background(), "a", "b", "c")
	if err != nil {
		t.Fatalf("MachineBySlugs: %v", err)
	}
	if m != nil {
		t.Errorf("got %+v, want nil for missing machine", m)
	}
}

func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Categories(context.Background())
	if err == nil {
		t.Fatal("expected error for upstream 400")
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Errorf("error should carry upstream status, got %v", err)
	}
}

func TestFetchMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Categories(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed envelope")
	}
}

func TestMachineProjectionDecodes(t *testing.T) {
	srv := newStoreServer(t, `{
		"_id": "m1",
		"name": "Haas VF-2",
		"brand": "Haas",
		"yearOfMfg": 2019,
		"stockNumber": "S-1042",
		"slug": {"current": "haas-vf-2"},
		"images": [{"url": "https://cdn.example.com/a.jpg", "alt": "front"}],
		"videoUrl": "https://youtu.be/x",
		"categorySlug": "cnc-machinery",
		"categoryName": "CNC Machinery",
		"subcategorySlug": "vertical-machining-centers",
		"subcategoryName": "Vertical Machining Centers"
	}`, nil)
	defer srv.Close()

	m, err := newTestClient(srv).MachineBySlugs(context.Background(), "cnc-machinery", "vertical-machining-centers", "haas-vf-2")
	if err != nil {
		t.Fatalf("MachineBySlugs: %v", err)
	}
	if m == nil {
		t.Fatal("got nil machine")
	}
	if m.Brand != "Haas" || m.YearOfMfg != 2019 || m.StockNumber != "S-1042" {
		t.Errorf("machine = %+v", m)
	}
	if img := m.PrimaryImage(); img == nil || img.URL != "https://cdn.example.com/a.jpg" {
		t.Errorf("primary image = %+v", img)
	}
	if want := "/inventory/cnc-machinery/vertical-machining-centers/haas-vf-2"; m.DetailPath() != want {
		t.Errorf("DetailPath = %q, want %q", m.DetailPath(), want)
	}
}

func TestBrandNames(t *testing.T) {
	srv := newStoreServer(t, `["Haas","Mazak","Okuma"]`, nil)
	defer srv.Close()

	names, err := newTestClient(srv).BrandNames(context.Background())
	if err != nil {
		t.Fatalf("BrandNames: %v", err)
	}
	if len(names) != 3 || names[1] != "Mazak" {
		t.Errorf("names = %v", names)
	}
}

func TestFetchContextCancellation(t *testing.T) {
	srv := newStoreServer(t, `null`, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).Categories(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

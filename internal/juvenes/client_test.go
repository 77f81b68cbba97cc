package juvenes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func wrap(t *testing.T, payload string) string {
	t.Helper()
	inner, err := json.Marshal(map[string]string{"d": payload})
	if err != nil {
		t.Fatalf("marshal wrapper: %v", err)
	}
	return "(" + string(inner) + ");"
}

const curryPayload = `{"MealOptions":[{"Name":"LOUNAS1","MenuItems":[{"Name":"Chicken curry"},{"Name":"Rice"}]}]}`

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultServiceURL {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultServiceURL)
	}

	u, err = parseEndpoint("example.com/menu?x=1#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Path != "/menu" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
}

func TestClient_FetchMenuEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(wrap(t, curryPayload)))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/GetMenuByWeekday", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	menu, err := c.FetchMenu(ctx, MenuQuery{KitchenID: 6, MenuTypeID: 60, Week: 43, Weekday: 1, Language: "fi"})
	if err != nil {
		t.Fatalf("FetchMenu returned error: %v", err)
	}
	if menu == nil || len(menu.MealOptions) != 1 || menu.MealOptions[0].Name != "LOUNAS1" {
		t.Fatalf("FetchMenu = %#v, want one LOUNAS1 option", menu)
	}
	if names := menu.MealOptions[0].ItemNames(); len(names) != 2 || names[0] != "Chicken curry" || names[1] != "Rice" {
		t.Fatalf("ItemNames = %v, want [Chicken curry Rice]", names)
	}

	if gotQuery.Get("KitchenId") != "6" ||
		gotQuery.Get("MenuTypeId") != "60" ||
		gotQuery.Get("Week") != "43" ||
		gotQuery.Get("Weekday") != "1" ||
		gotQuery.Get("lang") != "'fi'" ||
		gotQuery.Get("format") != "json" {
		t.Fatalf("FetchMenu query = %v, want params encoded", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "ruoka/") {
		t.Fatalf("User-Agent = %q, want ruoka/*", gotUserAgent)
	}
}

func TestClient_NullPayloadYieldsNilMenu(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(wrap(t, "null")))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	menu, err := c.FetchMenu(context.Background(), MenuQuery{})
	if err != nil {
		t.Fatalf("FetchMenu returned error: %v", err)
	}
	if menu != nil {
		t.Fatalf("FetchMenu = %#v, want nil", menu)
	}
}

func TestClient_HTTPErrorAndMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("KitchenId") {
		case "1":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte("<html>"))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchMenu(context.Background(), MenuQuery{KitchenID: 1})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchMenu error = %v, want status 500 error", err)
	}

	_, err = c.FetchMenu(context.Background(), MenuQuery{KitchenID: 2})
	if !errors.Is(err, ErrMalformedWrapper) {
		t.Fatalf("FetchMenu error = %v, want ErrMalformedWrapper", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchMenu(context.Background(), MenuQuery{}); err == nil {
		t.Fatalf("FetchMenu on nil client returned nil error")
	}
}

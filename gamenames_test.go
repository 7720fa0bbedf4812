package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withStoreStub(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := storeAPIBaseURL
	storeAPIBaseURL = srv.URL + "/api/appdetails?appids="
	t.Cleanup(func() { storeAPIBaseURL = prev })
}

func TestFetchGameNamesResolvesFromStore(t *testing.T) {
	withStoreStub(t, func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("appids")
		fmt.Fprintf(w, `{"%s":{"success":true,"data":{"name":"Store Game %s"}}}`, appID, appID)
	})

	names := FetchGameNames(context.Background(), []int{730, 440})
	assert.Equal(t, map[int]string{
		730: "Store Game 730",
		440: "Store Game 440",
	}, names)
}

func TestFetchGameNamesFallsBackPerGame(t *testing.T) {
	withStoreStub(t, func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("appids")
		if appID == "999" {
			fmt.Fprintf(w, `{"%s":{"success":false}}`, appID)
			return
		}
		fmt.Fprintf(w, `{"%s":{"success":true,"data":{"name":"Store Game %s"}}}`, appID, appID)
	})

	names := FetchGameNames(context.Background(), []int{730, 999})
	assert.Equal(t, "Store Game 730", names[730])
	assert.Equal(t, "Unknown Game (ID: 999)", names[999])
}

func TestFetchGameNamesServerError(t *testing.T) {
	withStoreStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	names := FetchGameNames(context.Background(), []int{42})
	assert.Equal(t, map[int]string{42: "Unknown Game (ID: 42)"}, names)
}

func TestFetchGameNamesEmptyInput(t *testing.T) {
	names := FetchGameNames(context.Background(), nil)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestFetchGameNameMalformedBody(t *testing.T) {
	withStoreStub(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("{", 3))
	})

	_, err := fetchGameName(context.Background(), 730)
	assert.Error(t, err)
}

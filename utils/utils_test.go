package utils_test

import (
	"net/http/httptest"
	"testing"

	"dbgvis/utils"
)

func TestMD5(t *testing.T) {
	if got, want := utils.MD5("test"), "098f6bcd4621d373cade4e832627b4f6"; got != want {
		t.Errorf("MD5 = %s, want %s", got, want)
	}
}

func TestGetFullURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://127.0.0.1:8080/str", nil)
	if got, want := utils.GetFullURL(r), "http://127.0.0.1:8080/str"; got != want {
		t.Errorf("GetFullURL = %s, want %s", got, want)
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "http://127.0.0.1:8080/str", nil)
	r.RemoteAddr = "10.0.0.7:51234"
	if got := utils.GetClientIP(r); got != "10.0.0.7" {
		t.Errorf("GetClientIP = %s", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.7")
	if got := utils.GetClientIP(r); got != "203.0.113.5" {
		t.Errorf("GetClientIP with X-Forwarded-For = %s", got)
	}
}

package carelogs

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateDetails_AcceptsMinimalPayloads(t *testing.T) {
	cases := []struct {
		logType LogType
		raw     string
	}{
		{LogFeeding, `{"food_type":"LIVE_INSECT","food_item":"cricket"}`},
		{LogShedding, `{"shed_completion":"COMPLETE"}`},
		{LogDefecation, `{"feces_present":true,"urate_present":false}`},
		{LogMating, `{"mating_success":"ATTEMPT"}`},
		{LogEggLaying, `{"egg_count":8,"incubation_planned":false}`},
		{LogCandling, `{"day_after_laying":10,"fertile_count":6,"infertile_count":2,"stopped_development":0,"total_viable":6}`},
		{LogHatching, `{"hatched_count":5,"failed_count":1}`},
	}

	for _, tc := range cases {
		if err := validateDetails(tc.logType, json.RawMessage(tc.raw)); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.logType, err)
		}
	}
}

func TestValidateDetails_AcceptsFullPayloads(t *testing.T) {
	cases := []struct {
		logType LogType
		raw     string
	}{
		{LogFeeding, `{"food_type":"FROZEN_RODENT","food_item":"adult mouse","quantity":25,"unit":"G","supplements":["calcium"],"feeding_response":"IMMEDIATE","feeding_method":"TONGS"}`},
		{LogShedding, `{"shed_completion":"PARTIAL","problem_areas":["tail tip"],"assistance_needed":true,"assistance_method":"warm soak","humidity_level":70.5}`},
		{LogDefecation, `{"feces_present":true,"urate_present":true,"feces_consistency":"NORMAL","feces_color":"brown","urate_condition":"NORMAL"}`},
		{LogMating, `{"mating_success":"SUCCESS","partner_name":"Luna","duration_minutes":45,"behavior_notes":"lock confirmed","expected_laying_date":"2026-04-20"}`},
		{LogEggLaying, `{"egg_count":8,"incubation_planned":true,"fertile_count":7,"infertile_count":1,"clutch_number":2,"incubation_method":"INCUBATOR","incubation_temp":29.5,"incubation_humidity":85,"expected_hatch_date":"2026-06-10"}`},
		{LogHatching, `{"hatched_count":6,"failed_count":1,"offspring_ids":["a1","a2"],"hatch_notes":"one assisted"}`},
	}

	for _, tc := range cases {
		if err := validateDetails(tc.logType, json.RawMessage(tc.raw)); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.logType, err)
		}
	}
}

func TestValidateDetails_RejectsMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		logType LogType
		raw     string
		wantMsg string
	}{
		{"feeding sin food_type", LogFeeding, `{"food_item":"cricket"}`, "food_type"},
		{"feeding sin food_item", LogFeeding, `{"food_type":"LIVE_INSECT"}`, "food_item"},
		{"shedding vacío", LogShedding, `{}`, "shed_completion"},
		{"defecation sin urate_present", LogDefecation, `{"feces_present":true}`, "urate_present"},
		{"mating vacío", LogMating, `{}`, "mating_success"},
		{"egg laying sin incubation_planned", LogEggLaying, `{"egg_count":8}`, "incubation_planned"},
		{"candling sin total_viable", LogCandling, `{"day_after_laying":10,"fertile_count":6,"infertile_count":2,"stopped_development":0}`, "total_viable"},
		{"hatching sin failed_count", LogHatching, `{"hatched_count":5}`, "failed_count"},
	}

	for _, tc := range cases {
		err := validateDetails(tc.logType, json.RawMessage(tc.raw))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Errorf("%s: error %q should name field %q", tc.name, err.Error(), tc.wantMsg)
		}
	}
}

func TestValidateDetails_RejectsUnknownEnumValues(t *testing.T) {
	cases := []struct {
		name    string
		logType LogType
		raw     string
	}{
		{"food_type fuera del set", LogFeeding, `{"food_type":"PIZZA","food_item":"slice"}`},
		{"unit fuera del set", LogFeeding, `{"food_type":"LIVE_INSECT","food_item":"cricket","unit":"OZ"}`},
		{"shed_completion fuera del set", LogShedding, `{"shed_completion":"DONE"}`},
		{"mating_success fuera del set", LogMating, `{"mating_success":"MAYBE"}`},
		{"incubation_method fuera del set", LogEggLaying, `{"egg_count":4,"incubation_planned":true,"incubation_method":"OVEN"}`},
	}

	for _, tc := range cases {
		if err := validateDetails(tc.logType, json.RawMessage(tc.raw)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestValidateDetails_RejectsWrongJSONTypes(t *testing.T) {
	// egg_count string en vez de número: el error nombra el campo
	err := validateDetails(LogEggLaying, json.RawMessage(`{"egg_count":"ocho","incubation_planned":true}`))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "egg_count") {
		t.Fatalf("error %q should name egg_count", err.Error())
	}
}

func TestValidateDetails_RejectsNegativeCounts(t *testing.T) {
	cases := []struct {
		name    string
		logType LogType
		raw     string
	}{
		{"egg_count negativo", LogEggLaying, `{"egg_count":-1,"incubation_planned":true}`},
		{"fertile_count negativo", LogCandling, `{"day_after_laying":10,"fertile_count":-1,"infertile_count":2,"stopped_development":0,"total_viable":6}`},
		{"hatched_count negativo", LogHatching, `{"hatched_count":-2,"failed_count":0}`},
		{"quantity negativa", LogFeeding, `{"food_type":"LIVE_INSECT","food_item":"cricket","quantity":-5}`},
	}

	for _, tc := range cases {
		if err := validateDetails(tc.logType, json.RawMessage(tc.raw)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestValidateDetails_RejectsMissingOrMalformedBody(t *testing.T) {
	if err := validateDetails(LogFeeding, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil details, got %v", err)
	}
	if err := validateDetails(LogFeeding, json.RawMessage(`"just a string"`)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-object details, got %v", err)
	}
	if err := validateDetails(LogType("WEIGHING"), json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
}

func TestValidateImages(t *testing.T) {
	ok := []Image{{URL: "https://cdn/a.jpg", Order: 0}, {URL: "https://cdn/b.jpg", Order: 1}}
	if err := validateImages(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := validateImages([]Image{{Order: 0}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for image without url, got %v", err)
	}
}

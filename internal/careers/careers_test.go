package careers

import (
	"reflect"
	"testing"

	"assessment-service/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	resolver := NewStaticResolver(nil)

	got := resolver.SuggestionsFor("computer_science")
	if len(got) == 0 {
		t.Fatal("expected suggestions for computer_science")
	}
	if got[0].Title != "Software Engineer" || got[0].Match != 92 {
		t.Errorf("top suggestion = %+v, want Software Engineer at 92", got[0])
	}

	if unknown := resolver.SuggestionsFor("underwater_basket_weaving"); len(unknown) != 0 {
		t.Errorf("suggestions for unknown subject = %v, want none", unknown)
	}
}

func TestResolverIsDeterministic(t *testing.T) {
	resolver := NewStaticResolver(nil)
	first := resolver.SuggestionsFor("mathematics")
	second := resolver.SuggestionsFor("mathematics")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("suggestions differ across calls:\n%v\n%v", first, second)
	}
}

func TestCustomCatalog(t *testing.T) {
	catalog := map[string][]models.CareerSuggestion{
		"music": {{Title: "Composer", Match: 90}},
	}
	resolver := NewStaticResolver(catalog)

	if got := resolver.SuggestionsFor("music"); len(got) != 1 || got[0].Title != "Composer" {
		t.Errorf("suggestions = %v, want the custom catalog entry", got)
	}
	if got := resolver.SuggestionsFor("mathematics"); len(got) != 0 {
		t.Errorf("custom catalog should not fall back to the default, got %v", got)
	}
}

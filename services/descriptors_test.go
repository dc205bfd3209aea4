package services

import (
	"reflect"
	"testing"

	"wine-insights/models"
)

func TestDescriptorWordsDropsStopwords(t *testing.T) {
	got := DescriptorWords("Rich and tannic, with notes of oak and cherry.")
	want := []string{"rich", "tannic", "notes", "oak", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DescriptorWords: got %v, want %v", got, want)
	}

	for _, tok := range got {
		if _, stop := stopwords[tok]; stop {
			t.Errorf("DescriptorWords returned stopword %q", tok)
		}
	}
}

func TestDescriptorWordsKeepsDuplicatesAndOrder(t *testing.T) {
	got := DescriptorWords("cherry before cherry and then cherry")
	want := []string{"cherry", "cherry", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DescriptorWords: got %v, want %v", got, want)
	}
}

func TestDescriptorWordsKeepsAccentedLetters(t *testing.T) {
	got := DescriptorWords("A crisp rosé from Provence")
	want := []string{"crisp", "rosé", "provence"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DescriptorWords: got %v, want %v", got, want)
	}
}

func TestDescriptorWordsEmptyText(t *testing.T) {
	if got := DescriptorWords(""); len(got) != 0 {
		t.Errorf("DescriptorWords(\"\") = %v, want empty", got)
	}
	if got := DescriptorWords("the of and"); len(got) != 0 {
		t.Errorf("all-stopword input: got %v, want empty", got)
	}
}

func TestFindDescriptorsExample(t *testing.T) {
	got := FindDescriptors("Rich and tannic with notes of oak and cherry")
	want := []string{"cherr", "oak", "tann"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDescriptors: got %v, want %v", got, want)
	}
}

func TestFindDescriptorsStemAppearsOnce(t *testing.T) {
	got := FindDescriptors("Cherry on cherries over cherry compote")
	want := []string{"cherr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDescriptors: got %v, want %v", got, want)
	}
}

func TestFindDescriptorsWordBoundary(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"the frog may croak", 0},   // "oak" buried mid-word
		{"oak-aged for a year", 1},  // boundary before the stem
		{"", 0},
	}
	for _, tt := range tests {
		got := FindDescriptors(tt.text)
		if len(got) != tt.want {
			t.Errorf("FindDescriptors(%q) = %v, want %d stems", tt.text, got, tt.want)
		}
	}
}

func TestAttachDescriptors(t *testing.T) {
	reviews := []*models.Review{
		{Description: "Bright cherry and soft tannins"},
		{Description: ""},
	}
	AttachDescriptors(reviews)

	if want := []string{"cherr", "tann"}; !reflect.DeepEqual(reviews[0].TastingNotes, want) {
		t.Errorf("TastingNotes: got %v, want %v", reviews[0].TastingNotes, want)
	}
	if want := []string{"bright", "cherry", "soft", "tannins"}; !reflect.DeepEqual(reviews[0].DescriptorWords, want) {
		t.Errorf("DescriptorWords: got %v, want %v", reviews[0].DescriptorWords, want)
	}
	if len(reviews[1].TastingNotes) != 0 || len(reviews[1].DescriptorWords) != 0 {
		t.Errorf("empty description should derive empty features")
	}
}

func TestFindDescriptorsVocabularyOrder(t *testing.T) {
	got := FindDescriptors("tannins, then oak, then apple")
	want := []string{"apple", "oak", "tann"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDescriptors: got %v, want %v (vocabulary order, not text order)", got, want)
	}
}

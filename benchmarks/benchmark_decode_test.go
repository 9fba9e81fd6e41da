package benchmarks_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/reoring/recipeld"
	"github.com/reoring/recipeld/schemaorg"
)

func recipeDoc(i int) string {
	return `{"@type":"Recipe","name":"Recipe ` + strconv.Itoa(i) + `","description":"A test recipe.",` +
		`"cookTime":"PT20M","prepTime":"PT10M","totalTime":"PT30M","recipeYield":["4","4 servings"],` +
		`"recipeIngredient":["1 cup flour","2 eggs","1 cup milk","1 tbsp sugar"],` +
		`"recipeInstructions":[{"@type":"HowToSection","name":"Batter","itemListElement":[` +
		`{"@type":"HowToStep","text":"Whisk."},{"@type":"HowToStep","text":"Rest."}]},` +
		`{"@type":"HowToSection","name":"Cook","itemListElement":["Fry.","Serve."]}]}`
}

func graphDoc(n int) []byte {
	var b strings.Builder
	b.WriteString(`{"@context":"https://schema.org","@graph":[{"@type":"WebPage","@id":"#page"}`)
	for i := 0; i < n; i++ {
		b.WriteString(",")
		b.WriteString(recipeDoc(i))
	}
	b.WriteString("]}")
	return []byte(b.String())
}

func Benchmark_FromJSONBytes_Single(b *testing.B) {
	data := []byte(recipeDoc(0))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := schemaorg.FromJSONBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_FromJSONBytes_Graph100(b *testing.B) {
	data := graphDoc(100)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := schemaorg.FromJSONBytes(data)
		if err != nil {
			b.Fatal(err)
		}
		if len(e.ExtractRecipes()) != 100 {
			b.Fatal("unexpected recipe count")
		}
	}
}

func Benchmark_DecodeAny_JSONNumber(b *testing.B) {
	data := graphDoc(10)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := recipeld.DecodeAny(recipeld.JSONBytes(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DecodeAny_Float64(b *testing.B) {
	data := graphDoc(10)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := recipeld.WithNumberMode(recipeld.JSONBytes(data), recipeld.NumberFloat64)
		if _, err := recipeld.DecodeAny(src); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ScrapeHTML(b *testing.B) {
	var page strings.Builder
	page.WriteString("<!doctype html><html><head>")
	for i := 0; i < 5; i++ {
		page.WriteString(`<script type="application/ld+json">` + recipeDoc(i) + `</script>`)
	}
	page.WriteString(`<script type="application/ld+json">{ broken</script></head><body>`)
	page.WriteString(strings.Repeat("<p>Lorem ipsum dolor sit amet.</p>", 200))
	page.WriteString("</body></html>")
	doc := page.String()

	b.ReportAllocs()
	b.SetBytes(int64(len(doc)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := len(schemaorg.ScrapeHTML(doc)); n != 5 {
			b.Fatalf("expected 5 entries, got %d", n)
		}
	}
}

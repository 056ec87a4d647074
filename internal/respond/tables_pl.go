package respond

import "github.com/insightlane/concierge/internal/classifier"

// Polish tables. Copy matches the marketing site's register: concrete,
// no hard sell.

var (
	plStatusDefault = []string{"Analizuję pytanie…", "Przygotowuję odpowiedź…"}
	plStatusROI     = []string{"Przetwarzam dane…", "Liczę scenariusze…", "Buduję symulację…"}
	plStatusTech    = []string{"Sprawdzam dokumentację…", "Zbieram szczegóły techniczne…", "Składam odpowiedź…"}
	plStatusTrial   = []string{"Przygotowuję dostęp…", "Jeszcze chwila…"}
)

var plTables = &localeTables{
	bodies: map[classifier.Intent]string{
		classifier.IntentGeneralProduct: "Insightlane łączy dane sprzedażowe i marketingowe w jeden panel i automatycznie wskazuje, co napędza Twój wynik. Konfiguracja zajmuje około 15 minut.",
		classifier.IntentPricing:        "Mamy trzy plany: Starter (99 zł/mies.), Professional (299 zł/mies.) i Enterprise (wycena indywidualna). Każdy plan można anulować w dowolnym momencie, bez okresu wypowiedzenia.",
		classifier.IntentROI:            "Nasi klienci widzą średnio 3–5x zwrot w pierwszym kwartale, głównie dzięki wycinaniu nierentownych kanałów. Mogę policzyć symulację na Twoich liczbach — wystarczy przybliżony miesięczny budżet.",
		classifier.IntentIntegrations:   "Mamy gotowe integracje m.in. z Shopify, Allegro, WooCommerce, PrestaShop i BaseLinkerem. Podpięcie sklepu to jeden klik i autoryzacja — dane spływają w ciągu godziny.",
		classifier.IntentSecurity:       "Dane są szyfrowane w spoczynku i w tranzycie, każdy klient ma odizolowaną przestrzeń (single tenant), a całość jest zgodna z RODO. Nie sprzedajemy ani nie udostępniamy danych nikomu.",
		classifier.IntentTech:           "Udostępniamy publiczne API (REST), webhooki i eksport do hurtowni danych. SSO i gwarancje SLA wchodzą w skład planu Enterprise. Limity zapytań zależą od planu.",
		classifier.IntentHowAIWorks:     "Silnik analizuje Twoje historyczne dane sprzedaży i wydatków, wykrywa wzorce i oznacza anomalie. Nie zgaduje — każda rekomendacja ma podpięte liczby, które ją uzasadniają.",
		classifier.IntentConfirmation:   "Świetnie. W takim razie proponuję przejść do konkretów — najwięcej zobaczysz na własnych danych.",
		classifier.IntentRefusal:        "W porządku, nic nie musisz decydować teraz. Gdybyś chciał wrócić do tematu, jestem tutaj.",
		classifier.IntentClarification:  "Już wyjaśniam: każdy plan zawiera pełny panel analityczny, raporty automatyczne i wsparcie. Różnice dotyczą liczby źródeł danych, użytkowników i limitów API.",
		classifier.IntentComparison:     "W odróżnieniu od klasycznych narzędzi BI nie musisz budować raportów samodzielnie — dostajesz gotowe odpowiedzi. Najszybciej zobaczysz różnicę, porównując na własnych danych.",
		classifier.IntentSkepticism:     "Rozumiem ostrożność — dlatego nie prosimy o kartę przy rejestracji. Wszystkie liczby, które podaję, możesz zweryfikować na próbce własnych danych w wersji testowej.",
		classifier.IntentUnintelligible: "Nie do końca rozumiem. Możesz zapytać np. o ceny, integracje albo o to, jak działa nasza analityka.",
		classifier.IntentCTATrial:       "Super! Konto testowe zakładasz w minutę — bez karty, 14 dni pełnego dostępu. Wystarczy adres e-mail.",
	},
	nextSteps: map[classifier.Intent]string{
		classifier.IntentGeneralProduct: "Chcesz zobaczyć krótkie demo na przykładowych danych?",
		classifier.IntentPricing:        "Mogę pomóc dobrać plan do skali Twojego biznesu.",
		classifier.IntentROI:            "Podaj przybliżony miesięczny budżet, a policzę symulację.",
		classifier.IntentIntegrations:   "Powiedz, z jakiej platformy korzystasz, a sprawdzę szczegóły.",
		classifier.IntentSecurity:       "Mogę podesłać pełną dokumentację bezpieczeństwa.",
		classifier.IntentTech:           "Chcesz link do dokumentacji API?",
		classifier.IntentHowAIWorks:     "Mogę pokazać przykładową rekomendację z uzasadnieniem.",
		classifier.IntentConfirmation:   "Zacznijmy od podpięcia pierwszego źródła danych.",
		classifier.IntentRefusal:        "W międzyczasie mogę odpowiedzieć na dowolne pytanie o produkt.",
		classifier.IntentClarification:  "Dopytaj śmiało o konkretny plan lub funkcję.",
		classifier.IntentComparison:     "Chcesz zestawienie funkcji z konkretnym narzędziem?",
		classifier.IntentSkepticism:     "Możesz też zajrzeć do opinii naszych klientów na stronie.",
		classifier.IntentUnintelligible: "Spróbuj opisać, co chcesz osiągnąć, własnymi słowami.",
		classifier.IntentCTATrial:       "Kliknij „Załóż konto” w prawym górnym rogu strony.",
	},
	preambles: map[classifier.Tone]string{
		classifier.ToneNeutral:    "",
		classifier.ToneCasual:     "Jasne, już mówię.",
		classifier.ToneFormal:     "Oczywiście, oto uporządkowana odpowiedź.",
		classifier.ToneSkeptical:  "Rozumiem wątpliwości, więc bez marketingowych obietnic:",
		classifier.ToneAggressive: "Rozumiem. Konkretnie:",
	},
	statuses: map[classifier.Intent][]string{
		classifier.IntentGeneralProduct: plStatusDefault,
		classifier.IntentPricing:        plStatusDefault,
		classifier.IntentROI:            plStatusROI,
		classifier.IntentIntegrations:   plStatusTech,
		classifier.IntentSecurity:       plStatusTech,
		classifier.IntentTech:           plStatusTech,
		classifier.IntentHowAIWorks:     plStatusTech,
		classifier.IntentConfirmation:   plStatusDefault,
		classifier.IntentRefusal:        plStatusDefault,
		classifier.IntentClarification:  plStatusDefault,
		classifier.IntentComparison:     plStatusDefault,
		classifier.IntentSkepticism:     plStatusDefault,
		classifier.IntentUnintelligible: plStatusDefault,
		classifier.IntentCTATrial:       plStatusTrial,
	},
	discountBody: "Aktualnie przy płatności rocznej dostajesz 2 miesiące gratis. Okazjonalne kody rabatowe wysyłamy w newsletterze — zapis jest na dole strony.",
	campaignBody: "Moduł kampanii liczy ROAS per kanał i per kreacja, łącząc koszty reklam z rzeczywistą sprzedażą. Zobaczysz, które kampanie realnie zarabiają, a które tylko klikają.",
	planHint:     "Widzę, że interesuje Cię plan %s — mogę rozpisać dokładnie, co zawiera.",
}

package intake

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxQuantity acota pesos/edades absurdos para que years*12 no desborde.
const maxQuantity = 1_000_000

const fallbackNamePrefix = "Pet-"

// ParseQuantity es el paso explícito de default-fill para inputs numéricos:
// toma signo + dígitos iniciales ("65lbs" -> 65, "12.7" -> 12),
// sin dígitos -> 0, negativo -> 0.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n > maxQuantity {
		return maxQuantity
	}
	return n
}

// SizeOf bucketiza el peso en libras. Límites superiores inclusivos.
func SizeOf(weightLbs int) Size {
	switch {
	case weightLbs <= 25:
		return SizeSmall
	case weightLbs <= 60:
		return SizeMedium
	case weightLbs <= 100:
		return SizeLarge
	default:
		return SizeExtraLarge
	}
}

// AgeOf bucketiza por meses totales.
func AgeOf(years, months int) Age {
	total := clamp(years)*12 + clamp(months)
	switch {
	case total <= 12:
		return AgePuppyKitten
	case total <= 36:
		return AgeYoung
	case total <= 84:
		return AgeAdult
	default:
		return AgeSenior
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxQuantity {
		return maxQuantity
	}
	return n
}

// CompatibilityOf: vacío o no reconocido cuenta como "No" (política, no error de parseo).
func CompatibilityOf(a Answer) Compatibility {
	switch a {
	case AnswerYes:
		return Compatibility{GetAlong: true}
	case AnswerUnsure:
		return Compatibility{IsUnsure: true}
	default:
		return Compatibility{}
	}
}

// ResolvePetType decide el tipo por el contexto de navegación, no por el form.
func ResolvePetType(petType string) PetType {
	if strings.EqualFold(strings.TrimSpace(petType), "dog") {
		return PetTypeDog
	}
	return PetTypeCat
}

var (
	sizeChoices = []Choice{
		{Key: SizeSmall.String(), Label: "Small (0-25 lbs)", Value: int(SizeSmall)},
		{Key: SizeMedium.String(), Label: "Medium (26-60 lbs)", Value: int(SizeMedium)},
		{Key: SizeLarge.String(), Label: "Large (61-100 lbs)", Value: int(SizeLarge)},
		{Key: SizeExtraLarge.String(), Label: "Extra Large (101+ lbs)", Value: int(SizeExtraLarge)},
	}
	ageChoices = []Choice{
		{Key: AgePuppyKitten.String(), Label: "Puppy/Kitten (0-1 yr)", Value: int(AgePuppyKitten)},
		{Key: AgeYoung.String(), Label: "Young (1-3 yrs)", Value: int(AgeYoung)},
		{Key: AgeAdult.String(), Label: "Adult (3-7 yrs)", Value: int(AgeAdult)},
		{Key: AgeSenior.String(), Label: "Senior (7+ yrs)", Value: int(AgeSenior)},
	}
)

func lookupChoice(choices []Choice, key string) (int, bool) {
	key = strings.TrimSpace(key)
	for _, c := range choices {
		if strings.EqualFold(c.Key, key) {
			return c.Value, true
		}
	}
	return 0, false
}

// SizeFromKey resuelve una key preseleccionada. Fallback: MEDIUM.
func SizeFromKey(key string) Size {
	if v, ok := lookupChoice(sizeChoices, key); ok {
		return Size(v)
	}
	return SizeMedium
}

// AgeFromKey resuelve una key preseleccionada. Fallback: ADULT.
func AgeFromKey(key string) Age {
	if v, ok := lookupChoice(ageChoices, key); ok {
		return Age(v)
	}
	return AgeAdult
}

// Choices devuelve copias para que nadie mute las tablas.
func Choices() Options {
	return Options{
		Sizes: append([]Choice(nil), sizeChoices...),
		Ages:  append([]Choice(nil), ageChoices...),
	}
}

// Assemble arma el Record canónico. Función pura: now solo afecta el nombre fallback.
// UserID queda vacío; lo completa quien conoce la sesión.
func Assemble(f Form, c EntryContext, now time.Time) Record {
	dogs := CompatibilityOf(ParseAnswer(f.FriendlyWithDogs))
	cats := CompatibilityOf(ParseAnswer(f.FriendlyWithCats))

	rec := Record{
		Name:             strings.TrimSpace(f.Name),
		Type:             ResolvePetType(c.PetType),
		GetAlongWithDogs: dogs.GetAlong,
		GetAlongWithCats: cats.GetAlong,
		IsUnsureWithDogs: dogs.IsUnsure,
		IsUnsureWithCats: cats.IsUnsure,
	}
	if rec.Name == "" {
		rec.Name = fallbackName(now)
	}

	switch f.Variant {
	case VariantQuick:
		rec.Size = SizeFromKey(f.SizeKey)
		rec.Age = AgeFromKey(f.AgeKey)
	default:
		rec.Size = SizeOf(ParseQuantity(f.Weight))
		rec.Age = AgeOf(ParseQuantity(f.AgeYears), ParseQuantity(f.AgeMonths))
		rec.SpecialInstructions = specialInstructions(f)
	}

	return rec
}

func fallbackName(now time.Time) string {
	return fmt.Sprintf("%s%d", fallbackNamePrefix, now.UnixMilli())
}

func specialInstructions(f Form) string {
	return fmt.Sprintf("Breed: %s, Sex: %s, Microchipped: %s, Spayed/Neutered: %s",
		strings.TrimSpace(f.Breed),
		normalizeSex(f.Sex),
		yesNo(f.MicroChipped),
		yesNo(f.SpayedNeutered),
	)
}

func normalizeSex(s string) string {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "male", "female":
		return v
	default:
		return ""
	}
}

// yesNo: microchip y castrado no admiten "unsure".
func yesNo(s string) string {
	switch a := ParseAnswer(s); a {
	case AnswerYes, AnswerNo:
		return a.String()
	default:
		return ""
	}
}

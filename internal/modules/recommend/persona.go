package recommend

import "fmt"

type Persona string

const (
	PersonaCasual     Persona = "casual"
	PersonaCritic     Persona = "critic"
	PersonaEnthusiast Persona = "enthusiast"

	DefaultPersona = PersonaCasual
)

var personaInstructions = map[Persona]string{
	PersonaCasual:     "You are a friendly movie recommendation assistant. Focus on popular, accessible films that are widely enjoyed. Keep recommendations light and entertaining.",
	PersonaCritic:     "You are a film critic with deep knowledge of cinema. Focus on artistic merit, technical aspects, and cultural significance. Provide detailed analysis.",
	PersonaEnthusiast: "You are a genre film enthusiast. Focus on specific genres, subgenres, and niche films. Highlight unique aspects and hidden gems.",
}

// ResolvePersona looks up the system instruction for key. The match is exact;
// unknown keys fail with ErrInvalidPersona.
func ResolvePersona(key string) (Persona, string, error) {
	p := Persona(key)
	instruction, ok := personaInstructions[p]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPersona, key)
	}
	return p, instruction, nil
}

/*
Package dsl builds adventures in Go with a fluent API instead of YAML or JSON records.
It is meant for tests, examples and generated content.

	b := dsl.New("cave", "La Cueva")

	b.Add("start").
		Dialogue("Guía", "¿Entramos?").
		Option("Sí", "fight").
		Option("No", "")

	b.Add("fight").
		Combat("Entrada").
		Enemy("Murciélago", "Bestia", 3).
		Next("chest")

	b.Add("chest").
		Loot("50 monedas de oro")

	adv, err := b.Build()
*/
package dsl

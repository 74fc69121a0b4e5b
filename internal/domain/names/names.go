// Package names holds the read-only given and family name pools used by the generator.
package names

import "github.com/okian/staffgen/internal/domain/model"

// Pool is an immutable list of names.
type Pool struct {
	names []string
}

// Len returns the number of names in the pool.
func (p Pool) Len() int { return len(p.names) }

// At returns the i-th name. It panics when i is out of range.
func (p Pool) At(i int) string { return p.names[i] }

// Pick returns a name chosen by intn, which must return a value in [0, n).
func (p Pool) Pick(intn func(n int) int) string {
	return p.names[intn(len(p.names))]
}

// Pools groups the given and family names for one gender.
type Pools struct {
	First Pool
	Last  Pool
}

// ForGender returns the pools matching g. Anything other than female gets the male pools.
func ForGender(g model.Gender) Pools {
	if g == model.GenderFemale {
		return Pools{First: Pool{names: femaleFirstNames}, Last: Pool{names: femaleLastNames}}
	}
	return Pools{First: Pool{names: maleFirstNames}, Last: Pool{names: maleLastNames}}
}

var femaleFirstNames = []string{
	"Eliška", "Viktorie", "Sofie", "Anna", "Natálie", "Amálie", "Ema", "Tereza", "Laura",
	"Adéla", "Julie", "Rozálie", "Nela", "Mia", "Emma", "Karolína", "Barbora", "Sára",
	"Stella", "Anežka", "Veronika", "Kristýna", "Marie", "Lucie", "Valerie",
}

var maleFirstNames = []string{
	"Matyáš", "Jakub", "Vojtěch", "Jan", "Matěj", "Filip", "David", "Tomáš", "Daniel",
	"Dominik", "Tobiáš", "Oliver", "Štěpán", "Antonín", "Sebastian", "Lukáš", "Martin",
	"Ondřej", "Mikuláš", "Adam", "Jonáš", "Samuel", "Tadeáš", "Šimon", "Eliáš",
}

var femaleLastNames = []string{
	"Nováková", "Novotná", "Dvořáková", "Svobodová", "Kučerová", "Procházková", "Černá",
	"Veselá", "Horáková", "Němcová", "Marková", "Benešová", "Králová", "Marešová",
	"Růžičková", "Kadlecová", "Sedláková", "Pokorná", "Urbanová", "Doležalová",
	"Jelínková", "Havlová", "Zemanová", "Horáčková", "Kratochvílová", "Málková",
	"Fialová", "Pavlová", "Konečná", "Krejčová", "Šimková", "Holubová", "Čechová",
	"Petrová", "Bartošová", "Křížová", "Vlčková", "Machová", "Vlachová", "Richterová",
	"Štěpánková", "Kovářová", "Tomanová", "Hrušková", "Součková", "Nečasová",
	"Sýkorová", "Matoušková", "Blažková", "Andrlová",
}

var maleLastNames = []string{
	"Novák", "Novotný", "Dvořák", "Svoboda", "Kučera", "Procházka", "Černý", "Veselý",
	"Horák", "Němec", "Marek", "Beneš", "Král", "Mareš", "Růžička", "Kadlec", "Sedlák",
	"Pokorný", "Urban", "Doležal", "Jelínek", "Havel", "Zeman", "Horáček", "Kratochvíl",
	"Málek", "Fiala", "Pavel", "Konečný", "Krejčí", "Šimek", "Holub", "Čech", "Petr",
	"Bartoš", "Kříž", "Vlček", "Mach", "Vlach", "Richter", "Štěpánek", "Kovář", "Toman",
	"Hruška", "Souček", "Nečas", "Sýkora", "Matoušek", "Blažek", "Andrle",
}

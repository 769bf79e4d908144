package cli

import (
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/spf13/pflag"
)

// profileFlagSet declares the profile fields shared by `onboard` and
// `profile set`.
func profileFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("profile", pflag.ContinueOnError)
	fs.String("name", "", "Name to be called by")
	fs.String("goal", "", "Main goal: energy, lightness, balance, confidence, weightloss")
	fs.String("rhythm", "", "Rhythm: calm, moderate, intense")
	fs.String("consistency", "", "Consistency: starting, building, established")
	fs.String("support", "", "Support level: minimal, regular, intensive")
	fs.Bool("morning", false, "Morning person")
	fs.String("challenge", "", "Current challenge: routine, motivation, knowledge, time")
	return fs
}

// patchFromFlags builds a patch from the flags the user actually set.
func patchFromFlags(fs *pflag.FlagSet) domain.ProfilePatch {
	var p domain.ProfilePatch
	str := func(name string) *string {
		if !fs.Changed(name) {
			return nil
		}
		v, _ := fs.GetString(name)
		return &v
	}
	p.Name = str("name")
	p.MainGoal = enumPtr[domain.Goal](str("goal"))
	p.Rhythm = enumPtr[domain.Rhythm](str("rhythm"))
	p.Consistency = enumPtr[domain.Consistency](str("consistency"))
	p.SupportLevel = enumPtr[domain.SupportLevel](str("support"))
	p.CurrentChallenge = enumPtr[domain.Challenge](str("challenge"))
	if fs.Changed("morning") {
		v, _ := fs.GetBool("morning")
		p.MorningPerson = &v
	}
	return p
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// Package main provides the CLI entrypoint for tzcaster.
//
// tzcaster maps records between wall-clock "data" types and UTC "domain"
// types, rezoning timestamp fields after a plain field copy. The CLI
// validates mapping profiles against the built-in record types and runs
// a sample conversion.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"tzcaster/caster"
	"tzcaster/data"
	"tzcaster/domain"
	"tzcaster/names"
	"tzcaster/profile"
	"tzcaster/zone"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tzcaster",
		Short: "Zone-aware struct caster registry",
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(zonesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// fixtureTypes names the record types a profile may declare pairs over.
func fixtureTypes() profile.TypeSet {
	return profile.TypeSet{
		"data.Person":        data.Person{},
		"domain.Person":      domain.Person{},
		"data.Appointment":   data.Appointment{},
		"domain.Appointment": domain.Appointment{},
	}
}

func fixtureResolvers(f names.Formatter) profile.Resolvers {
	return profile.Resolvers{
		"domain.Person.FullName": func(p data.Person) string {
			return f.FormatFullName(p.FirstName, p.LastName)
		},
	}
}

func defaultProfile(zoneName string) *profile.Profile {
	return &profile.Profile{
		Zone: zoneName,
		Pairs: []profile.Pair{
			{Source: "data.Person", Target: "domain.Person", Resolvers: []string{"FullName"}},
			{Source: "domain.Person", Target: "data.Person"},
			{Source: "data.Appointment", Target: "domain.Appointment"},
			{Source: "domain.Appointment", Target: "data.Appointment"},
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [profile.yaml]",
		Short: "Validate a mapping profile against the built-in record types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}

			reg, err := profile.Bind(p, fixtureTypes(), fixtureResolvers(names.Simple{}))
			if err != nil {
				return err
			}

			fmt.Printf("profile ok: zone %s, %d pair(s)\n", reg.Zone().Name(), len(reg.Mappings()))
			for _, m := range reg.Mappings() {
				fmt.Printf("  %s  %s\n", m, m.Direction())
			}

			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	var zoneName string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Convert sample records both ways and dump the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := profile.Bind(defaultProfile(zoneName), fixtureTypes(), fixtureResolvers(names.Simple{}))
			if err != nil {
				return err
			}

			updated := time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)
			person := data.Person{
				ID:          7,
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				IsActive:    true,
				CreatedTime: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
				UpdatedTime: &updated,
			}

			utcPerson, err := caster.ConvertTo[domain.Person](reg, person)
			if err != nil {
				return err
			}

			fmt.Println("data.Person -> domain.Person:")
			spew.Dump(utcPerson)

			back, err := caster.ConvertTo[data.Person](reg, utcPerson)
			if err != nil {
				return err
			}

			fmt.Println("domain.Person -> data.Person:")
			spew.Dump(back)

			appt := data.Appointment{
				ID:              12,
				PersonID:        7,
				Title:           "Annual checkup",
				Room:            "2B",
				StartTime:       time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC),
				EndTime:         time.Date(2024, time.July, 4, 12, 30, 0, 0, time.UTC),
				AppointmentTime: time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC),
			}

			utcAppt, err := caster.ConvertTo[domain.Appointment](reg, appt)
			if err != nil {
				return err
			}

			fmt.Println("data.Appointment -> domain.Appointment:")
			spew.Dump(utcAppt)

			return nil
		},
	}

	cmd.Flags().StringVar(&zoneName, "zone", "America/Chicago", "system local zone")

	return cmd
}

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones [name]",
		Short: "Resolve a zone name and print its current UTC offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := zone.Resolve(args[0])
			if err != nil {
				return err
			}

			abbr, offset := time.Now().In(h.Location()).Zone()
			fmt.Printf("%s: %s, UTC offset %s\n", h.Name(), abbr, time.Duration(offset)*time.Second)

			return nil
		},
	}
}

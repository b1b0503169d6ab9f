package cmd

import "testing"

func TestCommandRegistration(t *testing.T) {
	want := []string{"login", "logout", "whoami", "staff", "plans", "ui", "worksheet"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestStaffSubcommands(t *testing.T) {
	want := map[string]bool{"list": false, "create": false, "toggle": false}
	for _, c := range staffCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("staff subcommand %q is missing", name)
		}
	}
}

func TestPlanCreateDefaultsToWeeklyCycle(t *testing.T) {
	flag := plansCreateCmd.Flags().Lookup("billing-cycle")
	if flag == nil {
		t.Fatal("billing-cycle flag is missing")
	}
	if flag.DefValue != "weekly" {
		t.Errorf("billing-cycle default = %q, want weekly", flag.DefValue)
	}
}

func TestPlansSubcommands(t *testing.T) {
	want := map[string]bool{"list": false, "create": false, "add-vehicle": false}
	for _, c := range plansCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("plans subcommand %q is missing", name)
		}
	}
}

// Package wizard implements the interactive prompts behind aznet configure.
package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/ayeletshpigelman/azure-cli/internal/config"
)

// ErrCancelled is returned when the user aborts with Ctrl+C.
var ErrCancelled = terminal.InterruptErr

var subscriptionIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// CommonAzureRegions provides region choices with sensible defaults.
var CommonAzureRegions = []string{
	"westeurope",
	"northeurope",
	"eastus",
	"eastus2",
	"westus2",
	"uksouth",
	"swedencentral",
	"canadacentral",
}

// ValidateSubscriptionID validates a subscription UUID. Empty is allowed;
// the CLI falls back to the active session at run time.
func ValidateSubscriptionID(value interface{}) error {
	v := strings.TrimSpace(fmt.Sprintf("%v", value))
	if v == "" {
		return nil
	}
	if !subscriptionIDRegex.MatchString(v) {
		return fmt.Errorf("subscription ID must be a valid UUID")
	}
	return nil
}

// Prompter abstracts user interaction for testing.
type Prompter interface {
	Input(label, defaultValue string, validator survey.Validator) (string, error)
	Select(label string, options []string, defaultValue string) (string, error)
}

// SurveyPrompter implements Prompter with survey/v2.
type SurveyPrompter struct{}

// NewSurveyPrompter returns a survey-based prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) Input(label, defaultValue string, validator survey.Validator) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{
		Message: label,
		Default: defaultValue,
	}, &value, survey.WithValidator(validator))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *SurveyPrompter) Select(label string, options []string, defaultValue string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Select{
		Message: label,
		Options: options,
		Default: defaultValue,
	}, &value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// RunConfigure collects the aznet.yaml defaults interactively. Existing
// values are offered as prompt defaults.
func RunConfigure(p Prompter, existing *config.Config) (*config.Config, error) {
	if existing == nil {
		existing = &config.Config{APIVersion: config.APIVersion}
	}

	sub, err := p.Input("Default subscription ID (empty = active az session):",
		existing.Defaults.Subscription, survey.Validator(ValidateSubscriptionID))
	if err != nil {
		return nil, err
	}

	rg, err := p.Input("Default resource group:", existing.Defaults.ResourceGroup, nil)
	if err != nil {
		return nil, err
	}

	loc := existing.Defaults.Location
	if loc == "" {
		loc = CommonAzureRegions[0]
	}
	loc, err = p.Select("Default region:", CommonAzureRegions, loc)
	if err != nil {
		return nil, err
	}

	return &config.Config{
		APIVersion: config.APIVersion,
		Defaults: config.Defaults{
			Subscription:  sub,
			ResourceGroup: rg,
			Location:      loc,
		},
	}, nil
}

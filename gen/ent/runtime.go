// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/db/ent/schema"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pricecheckFields := schema.PriceCheck{}.Fields()
	_ = pricecheckFields
	// pricecheckDescSource is the schema descriptor for source field.
	pricecheckDescSource := pricecheckFields[3].Descriptor()
	// pricecheck.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	pricecheck.SourceValidator = pricecheckDescSource.Validators[0].(func(string) error)
	// pricecheckDescSnapshotSource is the schema descriptor for snapshot_source field.
	pricecheckDescSnapshotSource := pricecheckFields[6].Descriptor()
	// pricecheck.SnapshotSourceValidator is a validator for the "snapshot_source" field. It is called by the builders before save.
	pricecheck.SnapshotSourceValidator = pricecheckDescSnapshotSource.Validators[0].(func(string) error)
	// pricecheckDescRecommendation is the schema descriptor for recommendation field.
	pricecheckDescRecommendation := pricecheckFields[9].Descriptor()
	// pricecheck.RecommendationValidator is a validator for the "recommendation" field. It is called by the builders before save.
	pricecheck.RecommendationValidator = pricecheckDescRecommendation.Validators[0].(func(string) error)
	// pricecheckDescID is the schema descriptor for id field.
	pricecheckDescID := pricecheckFields[0].Descriptor()
	// pricecheck.DefaultID holds the default value on creation for the id field.
	pricecheck.DefaultID = pricecheckDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescHouseholdSize is the schema descriptor for household_size field.
	profileDescHouseholdSize := profileFields[1].Descriptor()
	// profile.HouseholdSizeValidator is a validator for the "household_size" field. It is called by the builders before save.
	profile.HouseholdSizeValidator = func() func(string) error {
		validators := profileDescHouseholdSize.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(household_size string) error {
			for _, fn := range fns {
				if err := fn(household_size); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescDwellingType is the schema descriptor for dwelling_type field.
	profileDescDwellingType := profileFields[2].Descriptor()
	// profile.DwellingTypeValidator is a validator for the "dwelling_type" field. It is called by the builders before save.
	profile.DwellingTypeValidator = func() func(string) error {
		validators := profileDescDwellingType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(dwelling_type string) error {
			for _, fn := range fns {
				if err := fn(dwelling_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescWorksFromHome is the schema descriptor for works_from_home field.
	profileDescWorksFromHome := profileFields[3].Descriptor()
	// profile.DefaultWorksFromHome holds the default value on creation for the works_from_home field.
	profile.DefaultWorksFromHome = profileDescWorksFromHome.Default.(bool)
	// profileDescHasHeatPump is the schema descriptor for has_heat_pump field.
	profileDescHasHeatPump := profileFields[4].Descriptor()
	// profile.DefaultHasHeatPump holds the default value on creation for the has_heat_pump field.
	profile.DefaultHasHeatPump = profileDescHasHeatPump.Default.(bool)
	// profileDescHasDistrictHeating is the schema descriptor for has_district_heating field.
	profileDescHasDistrictHeating := profileFields[5].Descriptor()
	// profile.DefaultHasDistrictHeating holds the default value on creation for the has_district_heating field.
	profile.DefaultHasDistrictHeating = profileDescHasDistrictHeating.Default.(bool)
	// profileDescHasSolarPanels is the schema descriptor for has_solar_panels field.
	profileDescHasSolarPanels := profileFields[6].Descriptor()
	// profile.DefaultHasSolarPanels holds the default value on creation for the has_solar_panels field.
	profile.DefaultHasSolarPanels = profileDescHasSolarPanels.Default.(bool)
	// profileDescContractType is the schema descriptor for contract_type field.
	profileDescContractType := profileFields[8].Descriptor()
	// profile.DefaultContractType holds the default value on creation for the contract_type field.
	profile.DefaultContractType = profileDescContractType.Default.(string)
	// profileDescTier is the schema descriptor for tier field.
	profileDescTier := profileFields[10].Descriptor()
	// profile.DefaultTier holds the default value on creation for the tier field.
	profile.DefaultTier = profileDescTier.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[11].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[12].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	usageestimateFields := schema.UsageEstimate{}.Fields()
	_ = usageestimateFields
	// usageestimateDescKwhPerMonth is the schema descriptor for kwh_per_month field.
	usageestimateDescKwhPerMonth := usageestimateFields[2].Descriptor()
	// usageestimate.KwhPerMonthValidator is a validator for the "kwh_per_month" field. It is called by the builders before save.
	usageestimate.KwhPerMonthValidator = usageestimateDescKwhPerMonth.Validators[0].(func(int) error)
	// usageestimateDescConfidence is the schema descriptor for confidence field.
	usageestimateDescConfidence := usageestimateFields[4].Descriptor()
	// usageestimate.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	usageestimate.ConfidenceValidator = usageestimateDescConfidence.Validators[0].(func(string) error)
	// usageestimateDescCreatedAt is the schema descriptor for created_at field.
	usageestimateDescCreatedAt := usageestimateFields[7].Descriptor()
	// usageestimate.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageestimate.DefaultCreatedAt = usageestimateDescCreatedAt.Default.(func() time.Time)
	// usageestimateDescID is the schema descriptor for id field.
	usageestimateDescID := usageestimateFields[0].Descriptor()
	// usageestimate.DefaultID holds the default value on creation for the id field.
	usageestimate.DefaultID = usageestimateDescID.Default.(func() uuid.UUID)
	verifiedusageFields := schema.VerifiedUsage{}.Fields()
	_ = verifiedusageFields
	// verifiedusageDescContractType is the schema descriptor for contract_type field.
	verifiedusageDescContractType := verifiedusageFields[5].Descriptor()
	// verifiedusage.DefaultContractType holds the default value on creation for the contract_type field.
	verifiedusage.DefaultContractType = verifiedusageDescContractType.Default.(string)
	// verifiedusageDescConfidence is the schema descriptor for confidence field.
	verifiedusageDescConfidence := verifiedusageFields[6].Descriptor()
	// verifiedusage.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	verifiedusage.ConfidenceValidator = verifiedusageDescConfidence.Validators[0].(func(string) error)
	// verifiedusageDescConfirmedAt is the schema descriptor for confirmed_at field.
	verifiedusageDescConfirmedAt := verifiedusageFields[8].Descriptor()
	// verifiedusage.DefaultConfirmedAt holds the default value on creation for the confirmed_at field.
	verifiedusage.DefaultConfirmedAt = verifiedusageDescConfirmedAt.Default.(func() time.Time)
	// verifiedusageDescID is the schema descriptor for id field.
	verifiedusageDescID := verifiedusageFields[0].Descriptor()
	// verifiedusage.DefaultID holds the default value on creation for the id field.
	verifiedusage.DefaultID = verifiedusageDescID.Default.(func() uuid.UUID)
}

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: stroomadvies/v1/stroomadvies.proto

package stroomadviesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Profile struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdSize      string                 `protobuf:"bytes,2,opt,name=household_size,json=householdSize,proto3" json:"household_size,omitempty"`
	DwellingType       string                 `protobuf:"bytes,3,opt,name=dwelling_type,json=dwellingType,proto3" json:"dwelling_type,omitempty"`
	WorksFromHome      bool                   `protobuf:"varint,4,opt,name=works_from_home,json=worksFromHome,proto3" json:"works_from_home,omitempty"`
	HasHeatPump        bool                   `protobuf:"varint,5,opt,name=has_heat_pump,json=hasHeatPump,proto3" json:"has_heat_pump,omitempty"`
	HasDistrictHeating bool                   `protobuf:"varint,6,opt,name=has_district_heating,json=hasDistrictHeating,proto3" json:"has_district_heating,omitempty"`
	HasSolarPanels     bool                   `protobuf:"varint,7,opt,name=has_solar_panels,json=hasSolarPanels,proto3" json:"has_solar_panels,omitempty"`
	Provider           string                 `protobuf:"bytes,8,opt,name=provider,proto3" json:"provider,omitempty"`
	ContractType       string                 `protobuf:"bytes,9,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	MonthlyCostEur     float64                `protobuf:"fixed64,10,opt,name=monthly_cost_eur,json=monthlyCostEur,proto3" json:"monthly_cost_eur,omitempty"`
	Tier               string                 `protobuf:"bytes,11,opt,name=tier,proto3" json:"tier,omitempty"`
	Verified           bool                   `protobuf:"varint,12,opt,name=verified,proto3" json:"verified,omitempty"`
	Estimate           *UsageEstimate         `protobuf:"bytes,13,opt,name=estimate,proto3" json:"estimate,omitempty"`
	VerifiedUsage      *VerifiedUsage         `protobuf:"bytes,14,opt,name=verified_usage,json=verifiedUsage,proto3" json:"verified_usage,omitempty"`
	LatestCheck        *PriceCheckResult      `protobuf:"bytes,15,opt,name=latest_check,json=latestCheck,proto3" json:"latest_check,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetHouseholdSize() string {
	if x != nil {
		return x.HouseholdSize
	}
	return ""
}

func (x *Profile) GetDwellingType() string {
	if x != nil {
		return x.DwellingType
	}
	return ""
}

func (x *Profile) GetWorksFromHome() bool {
	if x != nil {
		return x.WorksFromHome
	}
	return false
}

func (x *Profile) GetHasHeatPump() bool {
	if x != nil {
		return x.HasHeatPump
	}
	return false
}

func (x *Profile) GetHasDistrictHeating() bool {
	if x != nil {
		return x.HasDistrictHeating
	}
	return false
}

func (x *Profile) GetHasSolarPanels() bool {
	if x != nil {
		return x.HasSolarPanels
	}
	return false
}

func (x *Profile) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Profile) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *Profile) GetMonthlyCostEur() float64 {
	if x != nil {
		return x.MonthlyCostEur
	}
	return 0
}

func (x *Profile) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *Profile) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *Profile) GetEstimate() *UsageEstimate {
	if x != nil {
		return x.Estimate
	}
	return nil
}

func (x *Profile) GetVerifiedUsage() *VerifiedUsage {
	if x != nil {
		return x.VerifiedUsage
	}
	return nil
}

func (x *Profile) GetLatestCheck() *PriceCheckResult {
	if x != nil {
		return x.LatestCheck
	}
	return nil
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UsageEstimate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	KwhPerMonth   int32                  `protobuf:"varint,1,opt,name=kwh_per_month,json=kwhPerMonth,proto3" json:"kwh_per_month,omitempty"`
	RatePerKwh    float64                `protobuf:"fixed64,2,opt,name=rate_per_kwh,json=ratePerKwh,proto3" json:"rate_per_kwh,omitempty"`
	Confidence    string                 `protobuf:"bytes,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Assumptions   []string               `protobuf:"bytes,4,rep,name=assumptions,proto3" json:"assumptions,omitempty"`
	Reasoning     string                 `protobuf:"bytes,5,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UsageEstimate) Reset() {
	*x = UsageEstimate{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UsageEstimate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UsageEstimate) ProtoMessage() {}

func (x *UsageEstimate) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UsageEstimate.ProtoReflect.Descriptor instead.
func (*UsageEstimate) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{1}
}

func (x *UsageEstimate) GetKwhPerMonth() int32 {
	if x != nil {
		return x.KwhPerMonth
	}
	return 0
}

func (x *UsageEstimate) GetRatePerKwh() float64 {
	if x != nil {
		return x.RatePerKwh
	}
	return 0
}

func (x *UsageEstimate) GetConfidence() string {
	if x != nil {
		return x.Confidence
	}
	return ""
}

func (x *UsageEstimate) GetAssumptions() []string {
	if x != nil {
		return x.Assumptions
	}
	return nil
}

func (x *UsageEstimate) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

func (x *UsageEstimate) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type VerifiedUsage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	KwhPerMonth   float64                `protobuf:"fixed64,1,opt,name=kwh_per_month,json=kwhPerMonth,proto3" json:"kwh_per_month,omitempty"`
	RatePerKwh    float64                `protobuf:"fixed64,2,opt,name=rate_per_kwh,json=ratePerKwh,proto3" json:"rate_per_kwh,omitempty"`
	Provider      string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	ContractType  string                 `protobuf:"bytes,4,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	Confidence    string                 `protobuf:"bytes,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Warnings      []string               `protobuf:"bytes,6,rep,name=warnings,proto3" json:"warnings,omitempty"`
	ConfirmedAt   string                 `protobuf:"bytes,7,opt,name=confirmed_at,json=confirmedAt,proto3" json:"confirmed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifiedUsage) Reset() {
	*x = VerifiedUsage{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifiedUsage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifiedUsage) ProtoMessage() {}

func (x *VerifiedUsage) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifiedUsage.ProtoReflect.Descriptor instead.
func (*VerifiedUsage) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{2}
}

func (x *VerifiedUsage) GetKwhPerMonth() float64 {
	if x != nil {
		return x.KwhPerMonth
	}
	return 0
}

func (x *VerifiedUsage) GetRatePerKwh() float64 {
	if x != nil {
		return x.RatePerKwh
	}
	return 0
}

func (x *VerifiedUsage) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *VerifiedUsage) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *VerifiedUsage) GetConfidence() string {
	if x != nil {
		return x.Confidence
	}
	return ""
}

func (x *VerifiedUsage) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *VerifiedUsage) GetConfirmedAt() string {
	if x != nil {
		return x.ConfirmedAt
	}
	return ""
}

// BillExtraction mirrors what the document actually shows: numeric fields
// are absent when the bill does not state them.
type BillExtraction struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AnnualKwh      *float64               `protobuf:"fixed64,1,opt,name=annual_kwh,json=annualKwh,proto3,oneof" json:"annual_kwh,omitempty"`
	MonthlyKwh     *float64               `protobuf:"fixed64,2,opt,name=monthly_kwh,json=monthlyKwh,proto3,oneof" json:"monthly_kwh,omitempty"`
	AnnualCostEur  *float64               `protobuf:"fixed64,3,opt,name=annual_cost_eur,json=annualCostEur,proto3,oneof" json:"annual_cost_eur,omitempty"`
	MonthlyCostEur *float64               `protobuf:"fixed64,4,opt,name=monthly_cost_eur,json=monthlyCostEur,proto3,oneof" json:"monthly_cost_eur,omitempty"`
	PerKwhRate     *float64               `protobuf:"fixed64,5,opt,name=per_kwh_rate,json=perKwhRate,proto3,oneof" json:"per_kwh_rate,omitempty"`
	Provider       string                 `protobuf:"bytes,6,opt,name=provider,proto3" json:"provider,omitempty"`
	ContractType   string                 `protobuf:"bytes,7,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	Confidence     string                 `protobuf:"bytes,8,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Warnings       []string               `protobuf:"bytes,9,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BillExtraction) Reset() {
	*x = BillExtraction{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillExtraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillExtraction) ProtoMessage() {}

func (x *BillExtraction) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillExtraction.ProtoReflect.Descriptor instead.
func (*BillExtraction) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{3}
}

func (x *BillExtraction) GetAnnualKwh() float64 {
	if x != nil && x.AnnualKwh != nil {
		return *x.AnnualKwh
	}
	return 0
}

func (x *BillExtraction) GetMonthlyKwh() float64 {
	if x != nil && x.MonthlyKwh != nil {
		return *x.MonthlyKwh
	}
	return 0
}

func (x *BillExtraction) GetAnnualCostEur() float64 {
	if x != nil && x.AnnualCostEur != nil {
		return *x.AnnualCostEur
	}
	return 0
}

func (x *BillExtraction) GetMonthlyCostEur() float64 {
	if x != nil && x.MonthlyCostEur != nil {
		return *x.MonthlyCostEur
	}
	return 0
}

func (x *BillExtraction) GetPerKwhRate() float64 {
	if x != nil && x.PerKwhRate != nil {
		return *x.PerKwhRate
	}
	return 0
}

func (x *BillExtraction) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *BillExtraction) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *BillExtraction) GetConfidence() string {
	if x != nil {
		return x.Confidence
	}
	return ""
}

func (x *BillExtraction) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type MarketOffer struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Provider                string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	PerKwhRate              float64                `protobuf:"fixed64,2,opt,name=per_kwh_rate,json=perKwhRate,proto3" json:"per_kwh_rate,omitempty"`
	ContractType            string                 `protobuf:"bytes,3,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	WelcomeBonusEur         float64                `protobuf:"fixed64,4,opt,name=welcome_bonus_eur,json=welcomeBonusEur,proto3" json:"welcome_bonus_eur,omitempty"`
	EffectiveMonthlyCostEur float64                `protobuf:"fixed64,5,opt,name=effective_monthly_cost_eur,json=effectiveMonthlyCostEur,proto3" json:"effective_monthly_cost_eur,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *MarketOffer) Reset() {
	*x = MarketOffer{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketOffer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketOffer) ProtoMessage() {}

func (x *MarketOffer) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketOffer.ProtoReflect.Descriptor instead.
func (*MarketOffer) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{4}
}

func (x *MarketOffer) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *MarketOffer) GetPerKwhRate() float64 {
	if x != nil {
		return x.PerKwhRate
	}
	return 0
}

func (x *MarketOffer) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *MarketOffer) GetWelcomeBonusEur() float64 {
	if x != nil {
		return x.WelcomeBonusEur
	}
	return 0
}

func (x *MarketOffer) GetEffectiveMonthlyCostEur() float64 {
	if x != nil {
		return x.EffectiveMonthlyCostEur
	}
	return 0
}

type PriceCheckResult struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CheckedAt         string                 `protobuf:"bytes,2,opt,name=checked_at,json=checkedAt,proto3" json:"checked_at,omitempty"`
	Source            string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	UsedKwhPerMonth   float64                `protobuf:"fixed64,4,opt,name=used_kwh_per_month,json=usedKwhPerMonth,proto3" json:"used_kwh_per_month,omitempty"`
	UsedRatePerKwh    float64                `protobuf:"fixed64,5,opt,name=used_rate_per_kwh,json=usedRatePerKwh,proto3" json:"used_rate_per_kwh,omitempty"`
	SnapshotSource    string                 `protobuf:"bytes,6,opt,name=snapshot_source,json=snapshotSource,proto3" json:"snapshot_source,omitempty"`
	Top2              []*MarketOffer         `protobuf:"bytes,7,rep,name=top2,proto3" json:"top2,omitempty"`
	Cheapest          *MarketOffer           `protobuf:"bytes,8,opt,name=cheapest,proto3" json:"cheapest,omitempty"`
	Recommendation    string                 `protobuf:"bytes,9,opt,name=recommendation,proto3" json:"recommendation,omitempty"`
	MonthlySavingsEur float64                `protobuf:"fixed64,10,opt,name=monthly_savings_eur,json=monthlySavingsEur,proto3" json:"monthly_savings_eur,omitempty"`
	Reasoning         string                 `protobuf:"bytes,11,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *PriceCheckResult) Reset() {
	*x = PriceCheckResult{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceCheckResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceCheckResult) ProtoMessage() {}

func (x *PriceCheckResult) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceCheckResult.ProtoReflect.Descriptor instead.
func (*PriceCheckResult) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{5}
}

func (x *PriceCheckResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PriceCheckResult) GetCheckedAt() string {
	if x != nil {
		return x.CheckedAt
	}
	return ""
}

func (x *PriceCheckResult) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *PriceCheckResult) GetUsedKwhPerMonth() float64 {
	if x != nil {
		return x.UsedKwhPerMonth
	}
	return 0
}

func (x *PriceCheckResult) GetUsedRatePerKwh() float64 {
	if x != nil {
		return x.UsedRatePerKwh
	}
	return 0
}

func (x *PriceCheckResult) GetSnapshotSource() string {
	if x != nil {
		return x.SnapshotSource
	}
	return ""
}

func (x *PriceCheckResult) GetTop2() []*MarketOffer {
	if x != nil {
		return x.Top2
	}
	return nil
}

func (x *PriceCheckResult) GetCheapest() *MarketOffer {
	if x != nil {
		return x.Cheapest
	}
	return nil
}

func (x *PriceCheckResult) GetRecommendation() string {
	if x != nil {
		return x.Recommendation
	}
	return ""
}

func (x *PriceCheckResult) GetMonthlySavingsEur() float64 {
	if x != nil {
		return x.MonthlySavingsEur
	}
	return 0
}

func (x *PriceCheckResult) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

type CreateProfileRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	HouseholdSize      string                 `protobuf:"bytes,1,opt,name=household_size,json=householdSize,proto3" json:"household_size,omitempty"`
	DwellingType       string                 `protobuf:"bytes,2,opt,name=dwelling_type,json=dwellingType,proto3" json:"dwelling_type,omitempty"`
	WorksFromHome      bool                   `protobuf:"varint,3,opt,name=works_from_home,json=worksFromHome,proto3" json:"works_from_home,omitempty"`
	HasHeatPump        bool                   `protobuf:"varint,4,opt,name=has_heat_pump,json=hasHeatPump,proto3" json:"has_heat_pump,omitempty"`
	HasDistrictHeating bool                   `protobuf:"varint,5,opt,name=has_district_heating,json=hasDistrictHeating,proto3" json:"has_district_heating,omitempty"`
	HasSolarPanels     bool                   `protobuf:"varint,6,opt,name=has_solar_panels,json=hasSolarPanels,proto3" json:"has_solar_panels,omitempty"`
	Provider           string                 `protobuf:"bytes,7,opt,name=provider,proto3" json:"provider,omitempty"`
	ContractType       string                 `protobuf:"bytes,8,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	MonthlyCostEur     float64                `protobuf:"fixed64,9,opt,name=monthly_cost_eur,json=monthlyCostEur,proto3" json:"monthly_cost_eur,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{6}
}

func (x *CreateProfileRequest) GetHouseholdSize() string {
	if x != nil {
		return x.HouseholdSize
	}
	return ""
}

func (x *CreateProfileRequest) GetDwellingType() string {
	if x != nil {
		return x.DwellingType
	}
	return ""
}

func (x *CreateProfileRequest) GetWorksFromHome() bool {
	if x != nil {
		return x.WorksFromHome
	}
	return false
}

func (x *CreateProfileRequest) GetHasHeatPump() bool {
	if x != nil {
		return x.HasHeatPump
	}
	return false
}

func (x *CreateProfileRequest) GetHasDistrictHeating() bool {
	if x != nil {
		return x.HasDistrictHeating
	}
	return false
}

func (x *CreateProfileRequest) GetHasSolarPanels() bool {
	if x != nil {
		return x.HasSolarPanels
	}
	return false
}

func (x *CreateProfileRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *CreateProfileRequest) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *CreateProfileRequest) GetMonthlyCostEur() float64 {
	if x != nil {
		return x.MonthlyCostEur
	}
	return 0
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{7}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{8}
}

func (x *GetProfileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{9}
}

func (x *GetProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type StartPremiumCheckoutRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartPremiumCheckoutRequest) Reset() {
	*x = StartPremiumCheckoutRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartPremiumCheckoutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartPremiumCheckoutRequest) ProtoMessage() {}

func (x *StartPremiumCheckoutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartPremiumCheckoutRequest.ProtoReflect.Descriptor instead.
func (*StartPremiumCheckoutRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{10}
}

func (x *StartPremiumCheckoutRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type StartPremiumCheckoutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CheckoutUrl   string                 `protobuf:"bytes,1,opt,name=checkout_url,json=checkoutUrl,proto3" json:"checkout_url,omitempty"`
	PaymentId     string                 `protobuf:"bytes,2,opt,name=payment_id,json=paymentId,proto3" json:"payment_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartPremiumCheckoutResponse) Reset() {
	*x = StartPremiumCheckoutResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartPremiumCheckoutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartPremiumCheckoutResponse) ProtoMessage() {}

func (x *StartPremiumCheckoutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartPremiumCheckoutResponse.ProtoReflect.Descriptor instead.
func (*StartPremiumCheckoutResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{11}
}

func (x *StartPremiumCheckoutResponse) GetCheckoutUrl() string {
	if x != nil {
		return x.CheckoutUrl
	}
	return ""
}

func (x *StartPremiumCheckoutResponse) GetPaymentId() string {
	if x != nil {
		return x.PaymentId
	}
	return ""
}

type ExtractBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Document      []byte                 `protobuf:"bytes,2,opt,name=document,proto3" json:"document,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractBillRequest) Reset() {
	*x = ExtractBillRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractBillRequest) ProtoMessage() {}

func (x *ExtractBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractBillRequest.ProtoReflect.Descriptor instead.
func (*ExtractBillRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{12}
}

func (x *ExtractBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExtractBillRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ExtractBillRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *ExtractBillRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExtractBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *BillExtraction        `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractBillResponse) Reset() {
	*x = ExtractBillResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractBillResponse) ProtoMessage() {}

func (x *ExtractBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractBillResponse.ProtoReflect.Descriptor instead.
func (*ExtractBillResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{13}
}

func (x *ExtractBillResponse) GetExtraction() *BillExtraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type ConfirmBillRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	// The extraction as reviewed (and possibly corrected) by the user.
	Extraction    *BillExtraction `protobuf:"bytes,2,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBillRequest) Reset() {
	*x = ConfirmBillRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBillRequest) ProtoMessage() {}

func (x *ConfirmBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBillRequest.ProtoReflect.Descriptor instead.
func (*ConfirmBillRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{14}
}

func (x *ConfirmBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ConfirmBillRequest) GetExtraction() *BillExtraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type ConfirmBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VerifiedUsage *VerifiedUsage         `protobuf:"bytes,1,opt,name=verified_usage,json=verifiedUsage,proto3" json:"verified_usage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBillResponse) Reset() {
	*x = ConfirmBillResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBillResponse) ProtoMessage() {}

func (x *ConfirmBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBillResponse.ProtoReflect.Descriptor instead.
func (*ConfirmBillResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{15}
}

func (x *ConfirmBillResponse) GetVerifiedUsage() *VerifiedUsage {
	if x != nil {
		return x.VerifiedUsage
	}
	return nil
}

type RunPriceCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunPriceCheckRequest) Reset() {
	*x = RunPriceCheckRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunPriceCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunPriceCheckRequest) ProtoMessage() {}

func (x *RunPriceCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunPriceCheckRequest.ProtoReflect.Descriptor instead.
func (*RunPriceCheckRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{16}
}

func (x *RunPriceCheckRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type RunPriceCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *PriceCheckResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunPriceCheckResponse) Reset() {
	*x = RunPriceCheckResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunPriceCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunPriceCheckResponse) ProtoMessage() {}

func (x *RunPriceCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunPriceCheckResponse.ProtoReflect.Descriptor instead.
func (*RunPriceCheckResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{17}
}

func (x *RunPriceCheckResponse) GetResult() *PriceCheckResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type GetLatestPriceCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestPriceCheckRequest) Reset() {
	*x = GetLatestPriceCheckRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestPriceCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestPriceCheckRequest) ProtoMessage() {}

func (x *GetLatestPriceCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestPriceCheckRequest.ProtoReflect.Descriptor instead.
func (*GetLatestPriceCheckRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{18}
}

func (x *GetLatestPriceCheckRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetLatestPriceCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *PriceCheckResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestPriceCheckResponse) Reset() {
	*x = GetLatestPriceCheckResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestPriceCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestPriceCheckResponse) ProtoMessage() {}

func (x *GetLatestPriceCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestPriceCheckResponse.ProtoReflect.Descriptor instead.
func (*GetLatestPriceCheckResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{19}
}

func (x *GetLatestPriceCheckResponse) GetResult() *PriceCheckResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ExportPriceChecksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPriceChecksRequest) Reset() {
	*x = ExportPriceChecksRequest{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPriceChecksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPriceChecksRequest) ProtoMessage() {}

func (x *ExportPriceChecksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPriceChecksRequest.ProtoReflect.Descriptor instead.
func (*ExportPriceChecksRequest) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{20}
}

func (x *ExportPriceChecksRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportPriceChecksRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportPriceChecksRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportPriceChecksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPriceChecksResponse) Reset() {
	*x = ExportPriceChecksResponse{}
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPriceChecksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPriceChecksResponse) ProtoMessage() {}

func (x *ExportPriceChecksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stroomadvies_v1_stroomadvies_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPriceChecksResponse.ProtoReflect.Descriptor instead.
func (*ExportPriceChecksResponse) Descriptor() ([]byte, []int) {
	return file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP(), []int{21}
}

func (x *ExportPriceChecksResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportPriceChecksResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_stroomadvies_v1_stroomadvies_proto protoreflect.FileDescriptor

const file_stroomadvies_v1_stroomadvies_proto_rawDesc = "" +
	"\n" +
	"\"stroomadvies/v1/stroomadvies.proto\x12\x0fstroomadvies.v1\"\xaf\x05\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0ehousehold_size\x18\x02 \x01(\tR\rhouseholdSize\x12#\n" +
	"\rdwelling_type\x18\x03 \x01(\tR\fdwellingType\x12&\n" +
	"\x0fworks_from_home\x18\x04 \x01(\bR\rworksFromHome\x12\"\n" +
	"\rhas_heat_pump\x18\x05 \x01(\bR\vhasHeatPump\x120\n" +
	"\x14has_district_heating\x18\x06 \x01(\bR\x12hasDistrictHeating\x12(\n" +
	"\x10has_solar_panels\x18\a \x01(\bR\x0ehasSolarPanels\x12\x1a\n" +
	"\bprovider\x18\b \x01(\tR\bprovider\x12#\n" +
	"\rcontract_type\x18\t \x01(\tR\fcontractType\x12(\n" +
	"\x10monthly_cost_eur\x18\n" +
	" \x01(\x01R\x0emonthlyCostEur\x12\x12\n" +
	"\x04tier\x18\v \x01(\tR\x04tier\x12\x1a\n" +
	"\bverified\x18\f \x01(\bR\bverified\x12:\n" +
	"\bestimate\x18\r \x01(\v2\x1e.stroomadvies.v1.UsageEstimateR\bestimate\x12E\n" +
	"\x0everified_usage\x18\x0e \x01(\v2\x1e.stroomadvies.v1.VerifiedUsageR\rverifiedUsage\x12D\n" +
	"\flatest_check\x18\x0f \x01(\v2!.stroomadvies.v1.PriceCheckResultR\vlatestCheck\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\xd4\x01\n" +
	"\rUsageEstimate\x12\"\n" +
	"\rkwh_per_month\x18\x01 \x01(\x05R\vkwhPerMonth\x12 \n" +
	"\frate_per_kwh\x18\x02 \x01(\x01R\n" +
	"ratePerKwh\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\tR\n" +
	"confidence\x12 \n" +
	"\vassumptions\x18\x04 \x03(\tR\vassumptions\x12\x1c\n" +
	"\treasoning\x18\x05 \x01(\tR\treasoning\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\xf5\x01\n" +
	"\rVerifiedUsage\x12\"\n" +
	"\rkwh_per_month\x18\x01 \x01(\x01R\vkwhPerMonth\x12 \n" +
	"\frate_per_kwh\x18\x02 \x01(\x01R\n" +
	"ratePerKwh\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x12#\n" +
	"\rcontract_type\x18\x04 \x01(\tR\fcontractType\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\tR\n" +
	"confidence\x12\x1a\n" +
	"\bwarnings\x18\x06 \x03(\tR\bwarnings\x12!\n" +
	"\fconfirmed_at\x18\a \x01(\tR\vconfirmedAt\"\xb3\x03\n" +
	"\x0eBillExtraction\x12\"\n" +
	"\n" +
	"annual_kwh\x18\x01 \x01(\x01H\x00R\tannualKwh\x88\x01\x01\x12$\n" +
	"\vmonthly_kwh\x18\x02 \x01(\x01H\x01R\n" +
	"monthlyKwh\x88\x01\x01\x12+\n" +
	"\x0fannual_cost_eur\x18\x03 \x01(\x01H\x02R\rannualCostEur\x88\x01\x01\x12-\n" +
	"\x10monthly_cost_eur\x18\x04 \x01(\x01H\x03R\x0emonthlyCostEur\x88\x01\x01\x12%\n" +
	"\fper_kwh_rate\x18\x05 \x01(\x01H\x04R\n" +
	"perKwhRate\x88\x01\x01\x12\x1a\n" +
	"\bprovider\x18\x06 \x01(\tR\bprovider\x12#\n" +
	"\rcontract_type\x18\a \x01(\tR\fcontractType\x12\x1e\n" +
	"\n" +
	"confidence\x18\b \x01(\tR\n" +
	"confidence\x12\x1a\n" +
	"\bwarnings\x18\t \x03(\tR\bwarningsB\r\n" +
	"\v_annual_kwhB\x0e\n" +
	"\f_monthly_kwhB\x12\n" +
	"\x10_annual_cost_eurB\x13\n" +
	"\x11_monthly_cost_eurB\x0f\n" +
	"\r_per_kwh_rate\"\xd9\x01\n" +
	"\vMarketOffer\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12 \n" +
	"\fper_kwh_rate\x18\x02 \x01(\x01R\n" +
	"perKwhRate\x12#\n" +
	"\rcontract_type\x18\x03 \x01(\tR\fcontractType\x12*\n" +
	"\x11welcome_bonus_eur\x18\x04 \x01(\x01R\x0fwelcomeBonusEur\x12;\n" +
	"\x1aeffective_monthly_cost_eur\x18\x05 \x01(\x01R\x17effectiveMonthlyCostEur\"\xbc\x03\n" +
	"\x10PriceCheckResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"checked_at\x18\x02 \x01(\tR\tcheckedAt\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12+\n" +
	"\x12used_kwh_per_month\x18\x04 \x01(\x01R\x0fusedKwhPerMonth\x12)\n" +
	"\x11used_rate_per_kwh\x18\x05 \x01(\x01R\x0eusedRatePerKwh\x12'\n" +
	"\x0fsnapshot_source\x18\x06 \x01(\tR\x0esnapshotSource\x120\n" +
	"\x04top2\x18\a \x03(\v2\x1c.stroomadvies.v1.MarketOfferR\x04top2\x128\n" +
	"\bcheapest\x18\b \x01(\v2\x1c.stroomadvies.v1.MarketOfferR\bcheapest\x12&\n" +
	"\x0erecommendation\x18\t \x01(\tR\x0erecommendation\x12.\n" +
	"\x13monthly_savings_eur\x18\n" +
	" \x01(\x01R\x11monthlySavingsEur\x12\x1c\n" +
	"\treasoning\x18\v \x01(\tR\treasoning\"\xf5\x02\n" +
	"\x14CreateProfileRequest\x12%\n" +
	"\x0ehousehold_size\x18\x01 \x01(\tR\rhouseholdSize\x12#\n" +
	"\rdwelling_type\x18\x02 \x01(\tR\fdwellingType\x12&\n" +
	"\x0fworks_from_home\x18\x03 \x01(\bR\rworksFromHome\x12\"\n" +
	"\rhas_heat_pump\x18\x04 \x01(\bR\vhasHeatPump\x120\n" +
	"\x14has_district_heating\x18\x05 \x01(\bR\x12hasDistrictHeating\x12(\n" +
	"\x10has_solar_panels\x18\x06 \x01(\bR\x0ehasSolarPanels\x12\x1a\n" +
	"\bprovider\x18\a \x01(\tR\bprovider\x12#\n" +
	"\rcontract_type\x18\b \x01(\tR\fcontractType\x12(\n" +
	"\x10monthly_cost_eur\x18\t \x01(\x01R\x0emonthlyCostEur\"K\n" +
	"\x15CreateProfileResponse\x122\n" +
	"\aprofile\x18\x01 \x01(\v2\x18.stroomadvies.v1.ProfileR\aprofile\"2\n" +
	"\x11GetProfileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"H\n" +
	"\x12GetProfileResponse\x122\n" +
	"\aprofile\x18\x01 \x01(\v2\x18.stroomadvies.v1.ProfileR\aprofile\"<\n" +
	"\x1bStartPremiumCheckoutRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"`\n" +
	"\x1cStartPremiumCheckoutResponse\x12!\n" +
	"\fcheckout_url\x18\x01 \x01(\tR\vcheckoutUrl\x12\x1d\n" +
	"\n" +
	"payment_id\x18\x02 \x01(\tR\tpaymentId\"\x88\x01\n" +
	"\x12ExtractBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1a\n" +
	"\bdocument\x18\x02 \x01(\fR\bdocument\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\"V\n" +
	"\x13ExtractBillResponse\x12?\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x1f.stroomadvies.v1.BillExtractionR\n" +
	"extraction\"t\n" +
	"\x12ConfirmBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12?\n" +
	"\n" +
	"extraction\x18\x02 \x01(\v2\x1f.stroomadvies.v1.BillExtractionR\n" +
	"extraction\"\\\n" +
	"\x13ConfirmBillResponse\x12E\n" +
	"\x0everified_usage\x18\x01 \x01(\v2\x1e.stroomadvies.v1.VerifiedUsageR\rverifiedUsage\"5\n" +
	"\x14RunPriceCheckRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"R\n" +
	"\x15RunPriceCheckResponse\x129\n" +
	"\x06result\x18\x01 \x01(\v2!.stroomadvies.v1.PriceCheckResultR\x06result\";\n" +
	"\x1aGetLatestPriceCheckRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"X\n" +
	"\x1bGetLatestPriceCheckResponse\x129\n" +
	"\x06result\x18\x01 \x01(\v2!.stroomadvies.v1.PriceCheckResultR\x06result\"o\n" +
	"\x18ExportPriceChecksRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"K\n" +
	"\x19ExportPriceChecksResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xbd\x02\n" +
	"\x0fProfilesService\x12^\n" +
	"\rCreateProfile\x12%.stroomadvies.v1.CreateProfileRequest\x1a&.stroomadvies.v1.CreateProfileResponse\x12U\n" +
	"\n" +
	"GetProfile\x12\".stroomadvies.v1.GetProfileRequest\x1a#.stroomadvies.v1.GetProfileResponse\x12s\n" +
	"\x14StartPremiumCheckout\x12,.stroomadvies.v1.StartPremiumCheckoutRequest\x1a-.stroomadvies.v1.StartPremiumCheckoutResponse2\xc2\x01\n" +
	"\fBillsService\x12X\n" +
	"\vExtractBill\x12#.stroomadvies.v1.ExtractBillRequest\x1a$.stroomadvies.v1.ExtractBillResponse\x12X\n" +
	"\vConfirmBill\x12#.stroomadvies.v1.ConfirmBillRequest\x1a$.stroomadvies.v1.ConfirmBillResponse2\xe5\x01\n" +
	"\x11PriceCheckService\x12^\n" +
	"\rRunPriceCheck\x12%.stroomadvies.v1.RunPriceCheckRequest\x1a&.stroomadvies.v1.RunPriceCheckResponse\x12p\n" +
	"\x13GetLatestPriceCheck\x12+.stroomadvies.v1.GetLatestPriceCheckRequest\x1a,.stroomadvies.v1.GetLatestPriceCheckResponse2{\n" +
	"\rExportService\x12j\n" +
	"\x11ExportPriceChecks\x12).stroomadvies.v1.ExportPriceChecksRequest\x1a*.stroomadvies.v1.ExportPriceChecksResponseBJZHgithub.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1;stroomadviesv1b\x06proto3"

var (
	file_stroomadvies_v1_stroomadvies_proto_rawDescOnce sync.Once
	file_stroomadvies_v1_stroomadvies_proto_rawDescData []byte
)

func file_stroomadvies_v1_stroomadvies_proto_rawDescGZIP() []byte {
	file_stroomadvies_v1_stroomadvies_proto_rawDescOnce.Do(func() {
		file_stroomadvies_v1_stroomadvies_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stroomadvies_v1_stroomadvies_proto_rawDesc), len(file_stroomadvies_v1_stroomadvies_proto_rawDesc)))
	})
	return file_stroomadvies_v1_stroomadvies_proto_rawDescData
}

var file_stroomadvies_v1_stroomadvies_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_stroomadvies_v1_stroomadvies_proto_goTypes = []any{
	(*Profile)(nil),                      // 0: stroomadvies.v1.Profile
	(*UsageEstimate)(nil),                // 1: stroomadvies.v1.UsageEstimate
	(*VerifiedUsage)(nil),                // 2: stroomadvies.v1.VerifiedUsage
	(*BillExtraction)(nil),               // 3: stroomadvies.v1.BillExtraction
	(*MarketOffer)(nil),                  // 4: stroomadvies.v1.MarketOffer
	(*PriceCheckResult)(nil),             // 5: stroomadvies.v1.PriceCheckResult
	(*CreateProfileRequest)(nil),         // 6: stroomadvies.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),        // 7: stroomadvies.v1.CreateProfileResponse
	(*GetProfileRequest)(nil),            // 8: stroomadvies.v1.GetProfileRequest
	(*GetProfileResponse)(nil),           // 9: stroomadvies.v1.GetProfileResponse
	(*StartPremiumCheckoutRequest)(nil),  // 10: stroomadvies.v1.StartPremiumCheckoutRequest
	(*StartPremiumCheckoutResponse)(nil), // 11: stroomadvies.v1.StartPremiumCheckoutResponse
	(*ExtractBillRequest)(nil),           // 12: stroomadvies.v1.ExtractBillRequest
	(*ExtractBillResponse)(nil),          // 13: stroomadvies.v1.ExtractBillResponse
	(*ConfirmBillRequest)(nil),           // 14: stroomadvies.v1.ConfirmBillRequest
	(*ConfirmBillResponse)(nil),          // 15: stroomadvies.v1.ConfirmBillResponse
	(*RunPriceCheckRequest)(nil),         // 16: stroomadvies.v1.RunPriceCheckRequest
	(*RunPriceCheckResponse)(nil),        // 17: stroomadvies.v1.RunPriceCheckResponse
	(*GetLatestPriceCheckRequest)(nil),   // 18: stroomadvies.v1.GetLatestPriceCheckRequest
	(*GetLatestPriceCheckResponse)(nil),  // 19: stroomadvies.v1.GetLatestPriceCheckResponse
	(*ExportPriceChecksRequest)(nil),     // 20: stroomadvies.v1.ExportPriceChecksRequest
	(*ExportPriceChecksResponse)(nil),    // 21: stroomadvies.v1.ExportPriceChecksResponse
}
var file_stroomadvies_v1_stroomadvies_proto_depIdxs = []int32{
	1,  // 0: stroomadvies.v1.Profile.estimate:type_name -> stroomadvies.v1.UsageEstimate
	2,  // 1: stroomadvies.v1.Profile.verified_usage:type_name -> stroomadvies.v1.VerifiedUsage
	5,  // 2: stroomadvies.v1.Profile.latest_check:type_name -> stroomadvies.v1.PriceCheckResult
	4,  // 3: stroomadvies.v1.PriceCheckResult.top2:type_name -> stroomadvies.v1.MarketOffer
	4,  // 4: stroomadvies.v1.PriceCheckResult.cheapest:type_name -> stroomadvies.v1.MarketOffer
	0,  // 5: stroomadvies.v1.CreateProfileResponse.profile:type_name -> stroomadvies.v1.Profile
	0,  // 6: stroomadvies.v1.GetProfileResponse.profile:type_name -> stroomadvies.v1.Profile
	3,  // 7: stroomadvies.v1.ExtractBillResponse.extraction:type_name -> stroomadvies.v1.BillExtraction
	3,  // 8: stroomadvies.v1.ConfirmBillRequest.extraction:type_name -> stroomadvies.v1.BillExtraction
	2,  // 9: stroomadvies.v1.ConfirmBillResponse.verified_usage:type_name -> stroomadvies.v1.VerifiedUsage
	5,  // 10: stroomadvies.v1.RunPriceCheckResponse.result:type_name -> stroomadvies.v1.PriceCheckResult
	5,  // 11: stroomadvies.v1.GetLatestPriceCheckResponse.result:type_name -> stroomadvies.v1.PriceCheckResult
	6,  // 12: stroomadvies.v1.ProfilesService.CreateProfile:input_type -> stroomadvies.v1.CreateProfileRequest
	8,  // 13: stroomadvies.v1.ProfilesService.GetProfile:input_type -> stroomadvies.v1.GetProfileRequest
	10, // 14: stroomadvies.v1.ProfilesService.StartPremiumCheckout:input_type -> stroomadvies.v1.StartPremiumCheckoutRequest
	12, // 15: stroomadvies.v1.BillsService.ExtractBill:input_type -> stroomadvies.v1.ExtractBillRequest
	14, // 16: stroomadvies.v1.BillsService.ConfirmBill:input_type -> stroomadvies.v1.ConfirmBillRequest
	16, // 17: stroomadvies.v1.PriceCheckService.RunPriceCheck:input_type -> stroomadvies.v1.RunPriceCheckRequest
	18, // 18: stroomadvies.v1.PriceCheckService.GetLatestPriceCheck:input_type -> stroomadvies.v1.GetLatestPriceCheckRequest
	20, // 19: stroomadvies.v1.ExportService.ExportPriceChecks:input_type -> stroomadvies.v1.ExportPriceChecksRequest
	7,  // 20: stroomadvies.v1.ProfilesService.CreateProfile:output_type -> stroomadvies.v1.CreateProfileResponse
	9,  // 21: stroomadvies.v1.ProfilesService.GetProfile:output_type -> stroomadvies.v1.GetProfileResponse
	11, // 22: stroomadvies.v1.ProfilesService.StartPremiumCheckout:output_type -> stroomadvies.v1.StartPremiumCheckoutResponse
	13, // 23: stroomadvies.v1.BillsService.ExtractBill:output_type -> stroomadvies.v1.ExtractBillResponse
	15, // 24: stroomadvies.v1.BillsService.ConfirmBill:output_type -> stroomadvies.v1.ConfirmBillResponse
	17, // 25: stroomadvies.v1.PriceCheckService.RunPriceCheck:output_type -> stroomadvies.v1.RunPriceCheckResponse
	19, // 26: stroomadvies.v1.PriceCheckService.GetLatestPriceCheck:output_type -> stroomadvies.v1.GetLatestPriceCheckResponse
	21, // 27: stroomadvies.v1.ExportService.ExportPriceChecks:output_type -> stroomadvies.v1.ExportPriceChecksResponse
	20, // [20:28] is the sub-list for method output_type
	12, // [12:20] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_stroomadvies_v1_stroomadvies_proto_init() }
func file_stroomadvies_v1_stroomadvies_proto_init() {
	if File_stroomadvies_v1_stroomadvies_proto != nil {
		return
	}
	file_stroomadvies_v1_stroomadvies_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stroomadvies_v1_stroomadvies_proto_rawDesc), len(file_stroomadvies_v1_stroomadvies_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_stroomadvies_v1_stroomadvies_proto_goTypes,
		DependencyIndexes: file_stroomadvies_v1_stroomadvies_proto_depIdxs,
		MessageInfos:      file_stroomadvies_v1_stroomadvies_proto_msgTypes,
	}.Build()
	File_stroomadvies_v1_stroomadvies_proto = out.File
	file_stroomadvies_v1_stroomadvies_proto_goTypes = nil
	file_stroomadvies_v1_stroomadvies_proto_depIdxs = nil
}

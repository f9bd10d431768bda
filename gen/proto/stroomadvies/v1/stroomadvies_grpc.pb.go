// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: stroomadvies/v1/stroomadvies.proto

package stroomadviesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProfilesService_CreateProfile_FullMethodName        = "/stroomadvies.v1.ProfilesService/CreateProfile"
	ProfilesService_GetProfile_FullMethodName           = "/stroomadvies.v1.ProfilesService/GetProfile"
	ProfilesService_StartPremiumCheckout_FullMethodName = "/stroomadvies.v1.ProfilesService/StartPremiumCheckout"
)

// ProfilesServiceClient is the client API for ProfilesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProfilesService owns the profile lifecycle: signup (which runs the
// baseline estimate), reads, and the premium checkout hand-off.
type ProfilesServiceClient interface {
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	StartPremiumCheckout(ctx context.Context, in *StartPremiumCheckoutRequest, opts ...grpc.CallOption) (*StartPremiumCheckoutResponse, error)
}

type profilesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfilesServiceClient(cc grpc.ClientConnInterface) ProfilesServiceClient {
	return &profilesServiceClient{cc}
}

func (c *profilesServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_CreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profilesServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_GetProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profilesServiceClient) StartPremiumCheckout(ctx context.Context, in *StartPremiumCheckoutRequest, opts ...grpc.CallOption) (*StartPremiumCheckoutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartPremiumCheckoutResponse)
	err := c.cc.Invoke(ctx, ProfilesService_StartPremiumCheckout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfilesServiceServer is the server API for ProfilesService service.
// All implementations must embed UnimplementedProfilesServiceServer
// for forward compatibility.
//
// ProfilesService owns the profile lifecycle: signup (which runs the
// baseline estimate), reads, and the premium checkout hand-off.
type ProfilesServiceServer interface {
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	StartPremiumCheckout(context.Context, *StartPremiumCheckoutRequest) (*StartPremiumCheckoutResponse, error)
	mustEmbedUnimplementedProfilesServiceServer()
}

// UnimplementedProfilesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProfilesServiceServer struct{}

func (UnimplementedProfilesServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedProfilesServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedProfilesServiceServer) StartPremiumCheckout(context.Context, *StartPremiumCheckoutRequest) (*StartPremiumCheckoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartPremiumCheckout not implemented")
}
func (UnimplementedProfilesServiceServer) mustEmbedUnimplementedProfilesServiceServer() {}
func (UnimplementedProfilesServiceServer) testEmbeddedByValue()                         {}

// UnsafeProfilesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProfilesServiceServer will
// result in compilation errors.
type UnsafeProfilesServiceServer interface {
	mustEmbedUnimplementedProfilesServiceServer()
}

func RegisterProfilesServiceServer(s grpc.ServiceRegistrar, srv ProfilesServiceServer) {
	// If the following call panics, it indicates UnimplementedProfilesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProfilesService_ServiceDesc, srv)
}

func _ProfilesService_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_CreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfilesService_GetProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_GetProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfilesService_StartPremiumCheckout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartPremiumCheckoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).StartPremiumCheckout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_StartPremiumCheckout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).StartPremiumCheckout(ctx, req.(*StartPremiumCheckoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfilesService_ServiceDesc is the grpc.ServiceDesc for ProfilesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProfilesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stroomadvies.v1.ProfilesService",
	HandlerType: (*ProfilesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProfile",
			Handler:    _ProfilesService_CreateProfile_Handler,
		},
		{
			MethodName: "GetProfile",
			Handler:    _ProfilesService_GetProfile_Handler,
		},
		{
			MethodName: "StartPremiumCheckout",
			Handler:    _ProfilesService_StartPremiumCheckout_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stroomadvies/v1/stroomadvies.proto",
}

const (
	BillsService_ExtractBill_FullMethodName = "/stroomadvies.v1.BillsService/ExtractBill"
	BillsService_ConfirmBill_FullMethodName = "/stroomadvies.v1.BillsService/ConfirmBill"
)

// BillsServiceClient is the client API for BillsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BillsService extracts figures from an uploaded bill and finalizes them
// after the user has confirmed. Extraction alone never verifies a profile.
type BillsServiceClient interface {
	ExtractBill(ctx context.Context, in *ExtractBillRequest, opts ...grpc.CallOption) (*ExtractBillResponse, error)
	ConfirmBill(ctx context.Context, in *ConfirmBillRequest, opts ...grpc.CallOption) (*ConfirmBillResponse, error)
}

type billsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBillsServiceClient(cc grpc.ClientConnInterface) BillsServiceClient {
	return &billsServiceClient{cc}
}

func (c *billsServiceClient) ExtractBill(ctx context.Context, in *ExtractBillRequest, opts ...grpc.CallOption) (*ExtractBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractBillResponse)
	err := c.cc.Invoke(ctx, BillsService_ExtractBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) ConfirmBill(ctx context.Context, in *ConfirmBillRequest, opts ...grpc.CallOption) (*ConfirmBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmBillResponse)
	err := c.cc.Invoke(ctx, BillsService_ConfirmBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BillsServiceServer is the server API for BillsService service.
// All implementations must embed UnimplementedBillsServiceServer
// for forward compatibility.
//
// BillsService extracts figures from an uploaded bill and finalizes them
// after the user has confirmed. Extraction alone never verifies a profile.
type BillsServiceServer interface {
	ExtractBill(context.Context, *ExtractBillRequest) (*ExtractBillResponse, error)
	ConfirmBill(context.Context, *ConfirmBillRequest) (*ConfirmBillResponse, error)
	mustEmbedUnimplementedBillsServiceServer()
}

// UnimplementedBillsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBillsServiceServer struct{}

func (UnimplementedBillsServiceServer) ExtractBill(context.Context, *ExtractBillRequest) (*ExtractBillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractBill not implemented")
}
func (UnimplementedBillsServiceServer) ConfirmBill(context.Context, *ConfirmBillRequest) (*ConfirmBillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmBill not implemented")
}
func (UnimplementedBillsServiceServer) mustEmbedUnimplementedBillsServiceServer() {}
func (UnimplementedBillsServiceServer) testEmbeddedByValue()                      {}

// UnsafeBillsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BillsServiceServer will
// result in compilation errors.
type UnsafeBillsServiceServer interface {
	mustEmbedUnimplementedBillsServiceServer()
}

func RegisterBillsServiceServer(s grpc.ServiceRegistrar, srv BillsServiceServer) {
	// If the following call panics, it indicates UnimplementedBillsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BillsService_ServiceDesc, srv)
}

func _BillsService_ExtractBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ExtractBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ExtractBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ExtractBill(ctx, req.(*ExtractBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_ConfirmBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ConfirmBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ConfirmBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ConfirmBill(ctx, req.(*ConfirmBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BillsService_ServiceDesc is the grpc.ServiceDesc for BillsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BillsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stroomadvies.v1.BillsService",
	HandlerType: (*BillsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractBill",
			Handler:    _BillsService_ExtractBill_Handler,
		},
		{
			MethodName: "ConfirmBill",
			Handler:    _BillsService_ConfirmBill_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stroomadvies/v1/stroomadvies.proto",
}

const (
	PriceCheckService_RunPriceCheck_FullMethodName       = "/stroomadvies.v1.PriceCheckService/RunPriceCheck"
	PriceCheckService_GetLatestPriceCheck_FullMethodName = "/stroomadvies.v1.PriceCheckService/GetLatestPriceCheck"
)

// PriceCheckServiceClient is the client API for PriceCheckService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PriceCheckService runs market comparisons and serves the latest result.
type PriceCheckServiceClient interface {
	RunPriceCheck(ctx context.Context, in *RunPriceCheckRequest, opts ...grpc.CallOption) (*RunPriceCheckResponse, error)
	GetLatestPriceCheck(ctx context.Context, in *GetLatestPriceCheckRequest, opts ...grpc.CallOption) (*GetLatestPriceCheckResponse, error)
}

type priceCheckServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPriceCheckServiceClient(cc grpc.ClientConnInterface) PriceCheckServiceClient {
	return &priceCheckServiceClient{cc}
}

func (c *priceCheckServiceClient) RunPriceCheck(ctx context.Context, in *RunPriceCheckRequest, opts ...grpc.CallOption) (*RunPriceCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunPriceCheckResponse)
	err := c.cc.Invoke(ctx, PriceCheckService_RunPriceCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceCheckServiceClient) GetLatestPriceCheck(ctx context.Context, in *GetLatestPriceCheckRequest, opts ...grpc.CallOption) (*GetLatestPriceCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestPriceCheckResponse)
	err := c.cc.Invoke(ctx, PriceCheckService_GetLatestPriceCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PriceCheckServiceServer is the server API for PriceCheckService service.
// All implementations must embed UnimplementedPriceCheckServiceServer
// for forward compatibility.
//
// PriceCheckService runs market comparisons and serves the latest result.
type PriceCheckServiceServer interface {
	RunPriceCheck(context.Context, *RunPriceCheckRequest) (*RunPriceCheckResponse, error)
	GetLatestPriceCheck(context.Context, *GetLatestPriceCheckRequest) (*GetLatestPriceCheckResponse, error)
	mustEmbedUnimplementedPriceCheckServiceServer()
}

// UnimplementedPriceCheckServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPriceCheckServiceServer struct{}

func (UnimplementedPriceCheckServiceServer) RunPriceCheck(context.Context, *RunPriceCheckRequest) (*RunPriceCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunPriceCheck not implemented")
}
func (UnimplementedPriceCheckServiceServer) GetLatestPriceCheck(context.Context, *GetLatestPriceCheckRequest) (*GetLatestPriceCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLatestPriceCheck not implemented")
}
func (UnimplementedPriceCheckServiceServer) mustEmbedUnimplementedPriceCheckServiceServer() {}
func (UnimplementedPriceCheckServiceServer) testEmbeddedByValue()                           {}

// UnsafePriceCheckServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PriceCheckServiceServer will
// result in compilation errors.
type UnsafePriceCheckServiceServer interface {
	mustEmbedUnimplementedPriceCheckServiceServer()
}

func RegisterPriceCheckServiceServer(s grpc.ServiceRegistrar, srv PriceCheckServiceServer) {
	// If the following call panics, it indicates UnimplementedPriceCheckServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PriceCheckService_ServiceDesc, srv)
}

func _PriceCheckService_RunPriceCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunPriceCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceCheckServiceServer).RunPriceCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceCheckService_RunPriceCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceCheckServiceServer).RunPriceCheck(ctx, req.(*RunPriceCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceCheckService_GetLatestPriceCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestPriceCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceCheckServiceServer).GetLatestPriceCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceCheckService_GetLatestPriceCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceCheckServiceServer).GetLatestPriceCheck(ctx, req.(*GetLatestPriceCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PriceCheckService_ServiceDesc is the grpc.ServiceDesc for PriceCheckService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PriceCheckService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stroomadvies.v1.PriceCheckService",
	HandlerType: (*PriceCheckServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunPriceCheck",
			Handler:    _PriceCheckService_RunPriceCheck_Handler,
		},
		{
			MethodName: "GetLatestPriceCheck",
			Handler:    _PriceCheckService_GetLatestPriceCheck_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stroomadvies/v1/stroomadvies.proto",
}

const (
	ExportService_ExportPriceChecks_FullMethodName = "/stroomadvies.v1.ExportService/ExportPriceChecks"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces XLSX exports of a profile's price-check history.
type ExportServiceClient interface {
	ExportPriceChecks(ctx context.Context, in *ExportPriceChecksRequest, opts ...grpc.CallOption) (*ExportPriceChecksResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportPriceChecks(ctx context.Context, in *ExportPriceChecksRequest, opts ...grpc.CallOption) (*ExportPriceChecksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportPriceChecksResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportPriceChecks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces XLSX exports of a profile's price-check history.
type ExportServiceServer interface {
	ExportPriceChecks(context.Context, *ExportPriceChecksRequest) (*ExportPriceChecksResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportPriceChecks(context.Context, *ExportPriceChecksRequest) (*ExportPriceChecksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportPriceChecks not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportPriceChecks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportPriceChecksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportPriceChecks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportPriceChecks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportPriceChecks(ctx, req.(*ExportPriceChecksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stroomadvies.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportPriceChecks",
			Handler:    _ExportService_ExportPriceChecks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stroomadvies/v1/stroomadvies.proto",
}

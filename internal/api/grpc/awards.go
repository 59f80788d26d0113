package grpc

import (
	context "context"
	"errors"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"

	"go.uber.org/zap"
)

const ServiceName = "awards.Awards"

type EvaluateRequest struct {
	User        string `json:"user"`
	Award       string `json:"award"`
	IncludeQSOs bool   `json:"include_qsos"`
}

type ContactAwardsRequest struct {
	User string `json:"user"`
	QSO  int64  `json:"qso"`
}

type ContactAwardsResponse struct {
	Awards []models.Membership `json:"awards"`
}

type AwardsServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*models.EvaluationResult, error)
	ContactAwards(context.Context, *ContactAwardsRequest) (*ContactAwardsResponse, error)
}

type AwardsService struct {
	service interf.AwardService
	logger  *zap.Logger
}

func NewAwardsService(service interf.AwardService, logger *zap.Logger) *AwardsService {
	return &AwardsService{service, logger}
}

func (p *AwardsService) Log(err error) {
	p.logger.Error(err.Error(), zap.String("service", ServiceName))
}

// ошибка сервиса -> статус gRPC
func (p *AwardsService) toStatus(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	p.Log(err)
	return status.Error(codes.Internal, err.Error())
}

// Проверка награды
func (p *AwardsService) Evaluate(ctx context.Context, in *EvaluateRequest) (*models.EvaluationResult, error) {
	if in.User == "" {
		return nil, status.Error(codes.InvalidArgument, "user is empty")
	}
	id, err := uuid.Parse(in.Award)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "award id is not correct")
	}
	result, err := p.service.Evaluate(ctx, in.User, id, in.IncludeQSOs)
	if err != nil {
		return nil, p.toStatus(err)
	}
	return result, nil
}

// Награды, которым соответствует связь
func (p *AwardsService) ContactAwards(ctx context.Context, in *ContactAwardsRequest) (*ContactAwardsResponse, error) {
	if in.User == "" {
		return nil, status.Error(codes.InvalidArgument, "user is empty")
	}
	awards, err := p.service.ContactAwards(ctx, in.User, in.QSO)
	if err != nil {
		return nil, p.toStatus(err)
	}
	return &ContactAwardsResponse{Awards: awards}, nil
}

// описание сервиса

func RegisterAwardsServer(s grpc.ServiceRegistrar, srv AwardsServer) {
	s.RegisterService(&Awards_ServiceDesc, srv)
}

var Awards_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AwardsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _Awards_Evaluate_Handler,
		},
		{
			MethodName: "ContactAwards",
			Handler:    _Awards_ContactAwards_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "awards.json",
}

func _Awards_Evaluate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AwardsServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Evaluate",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AwardsServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Awards_ContactAwards_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ContactAwardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AwardsServer).ContactAwards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ContactAwards",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AwardsServer).ContactAwards(ctx, req.(*ContactAwardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// клиент

type AwardsClient struct {
	cc grpc.ClientConnInterface
}

func NewAwardsClient(cc grpc.ClientConnInterface) *AwardsClient {
	return &AwardsClient{cc}
}

func (c *AwardsClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*models.EvaluationResult, error) {
	out := new(models.EvaluationResult)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	err := c.cc.Invoke(ctx, "/"+ServiceName+"/Evaluate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AwardsClient) ContactAwards(ctx context.Context, in *ContactAwardsRequest, opts ...grpc.CallOption) (*ContactAwardsResponse, error) {
	out := new(ContactAwardsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	err := c.cc.Invoke(ctx, "/"+ServiceName+"/ContactAwards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jt828/storefront-telemetry/internal/service"
	"github.com/jt828/storefront-telemetry/pkg/apperror"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	v1 "github.com/jt828/storefront-telemetry/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	fieldName          = "name"
	fieldLabels        = "labels"
	fieldWindowSeconds = "window_seconds"
)

type TelemetryController struct {
	v1.UnimplementedTelemetryServiceServer
	engine          telemetry.Consumer
	businessService service.BusinessMetricsService
}

func NewTelemetryController(engine telemetry.Consumer, businessService service.BusinessMetricsService) *TelemetryController {
	return &TelemetryController{engine: engine, businessService: businessService}
}

func (ctrl *TelemetryController) GetAllMetrics(
	ctx context.Context,
	_ *emptypb.Empty,
) (*structpb.Struct, error) {
	return toStruct(ctrl.engine.Snapshot())
}

func (ctrl *TelemetryController) GetBusinessMetrics(
	ctx context.Context,
	_ *emptypb.Empty,
) (*structpb.Struct, error) {
	return toStruct(ctrl.businessService.GetBusinessMetrics(ctx))
}

func (ctrl *TelemetryController) GetCounter(
	ctx context.Context,
	request *structpb.Struct,
) (*wrapperspb.DoubleValue, error) {
	name, labels, err := parseSeries(request)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Double(ctrl.engine.Counter(name, labels)), nil
}

func (ctrl *TelemetryController) GetGauge(
	ctx context.Context,
	request *structpb.Struct,
) (*wrapperspb.DoubleValue, error) {
	name, labels, err := parseSeries(request)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Double(ctrl.engine.Gauge(name, labels)), nil
}

func (ctrl *TelemetryController) GetHistogramStats(
	ctx context.Context,
	request *structpb.Struct,
) (*structpb.Struct, error) {
	name, labels, err := parseSeries(request)
	if err != nil {
		return nil, err
	}
	return toStruct(ctrl.engine.HistogramStats(name, labels))
}

func (ctrl *TelemetryController) GetRate(
	ctx context.Context,
	request *structpb.Struct,
) (*wrapperspb.DoubleValue, error) {
	name, labels, err := parseSeries(request)
	if err != nil {
		return nil, err
	}
	seconds := request.GetFields()[fieldWindowSeconds].GetNumberValue()
	if seconds <= 0 {
		return nil, fmt.Errorf("%s must be greater than 0: %w", fieldWindowSeconds, apperror.ErrInvalidArgument)
	}
	window := time.Duration(seconds * float64(time.Second))
	return wrapperspb.Double(ctrl.engine.Rate(name, window, labels)), nil
}

// parseSeries reads name and labels. Labels stay nil when the field is absent.
func parseSeries(request *structpb.Struct) (string, telemetry.Labels, error) {
	fields := request.GetFields()
	name := fields[fieldName].GetStringValue()
	if name == "" {
		return "", nil, fmt.Errorf("%s is required: %w", fieldName, apperror.ErrInvalidArgument)
	}

	raw, ok := fields[fieldLabels]
	if !ok {
		return name, nil, nil
	}
	labelStruct := raw.GetStructValue()
	if labelStruct == nil {
		return "", nil, fmt.Errorf("%s must be an object: %w", fieldLabels, apperror.ErrInvalidArgument)
	}

	labels := make(telemetry.Labels, len(labelStruct.GetFields()))
	for k, v := range labelStruct.GetFields() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return "", nil, fmt.Errorf("label %q must be a string: %w", k, apperror.ErrInvalidArgument)
		}
		labels[k] = s.StringValue
	}
	return name, labels, nil
}

// toStruct converts any JSON-serialisable report into a protobuf Struct.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

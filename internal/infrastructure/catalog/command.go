package catalog

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/go-viper/mapstructure/v2"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

// command binds one SDK call into the dispatch table. fn is an awsclient.API
// method expression such as awsclient.API.DescribeTransitGateways. The
// request map is decoded into the SDK input struct by field name; the SDK
// output pointer is returned untouched as the raw payload.
func command[In, Out any](
	op string,
	fn func(awsclient.API, context.Context, *In, ...func(*ec2.Options)) (*Out, error),
) ports.OperationCommand {
	return func(ctx context.Context, client ports.ClientHandle, request map[string]any) (any, error) {
		h, ok := client.(*awsclient.Handle)
		if !ok {
			return nil, apperrors.NewConfigurationError("client", fmt.Sprintf("unsupported client handle %T", client), nil)
		}

		in := new(In)
		if err := decodeRequest(request, in); err != nil {
			return nil, apperrors.NewEncodingError(op, err)
		}

		out, err := fn(h.API(), ctx, in)
		if err != nil {
			return nil, classify(op, err)
		}
		if out == nil {
			return nil, nil
		}
		return out, nil
	}
}

// decodeRequest fills an SDK input struct from a bound request. Field names
// match case-insensitively; keys the struct does not know are ignored.
// Numbers that would not survive the conversion into an integer field are
// rejected rather than truncated.
func decodeRequest(request map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			exactIntegerHook(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(request)
}

// exactIntegerHook fails the decode when a number bound for an integer field
// has a fractional part or does not fit the field's width.
func exactIntegerHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if data == nil {
			return data, nil
		}
		for to.Kind() == reflect.Pointer {
			to = to.Elem()
		}
		signed := false
		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			signed = true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return data, nil
		}

		field := reflect.New(to).Elem()
		v := reflect.ValueOf(data)
		fits := true
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
				return nil, fmt.Errorf("%v is not an integer", data)
			}
			switch {
			case signed:
				fits = f >= math.MinInt64 && f < math.MaxInt64 && !field.OverflowInt(int64(f))
			default:
				fits = f >= 0 && f < math.MaxUint64 && !field.OverflowUint(uint64(f))
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i := v.Int()
			switch {
			case signed:
				fits = !field.OverflowInt(i)
			default:
				fits = i >= 0 && !field.OverflowUint(uint64(i))
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := v.Uint()
			switch {
			case signed:
				fits = u <= math.MaxInt64 && !field.OverflowInt(int64(u))
			default:
				fits = !field.OverflowUint(u)
			}
		}
		if !fits {
			return nil, fmt.Errorf("%v is out of range for %s", data, to.Kind())
		}
		return data, nil
	}
}

package catalog

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

func natGatewayEntries() []Entry {
	return []Entry{
		define(operation.Descriptor{
			Name:        "CreateNatGateway",
			Description: "Creates a NAT gateway in the specified subnet.",
			InputFields: []operation.FieldSpec{
				reqStr("SubnetId", "The ID of the subnet in which to create the NAT gateway."),
				str("AllocationId", "[Public NAT gateways only] The allocation ID of an Elastic IP address to associate."),
				str("ConnectivityType", "Indicates whether the NAT gateway supports public or private connectivity."),
				str("PrivateIpAddress", "The private IPv4 address to assign to the NAT gateway."),
				strList("SecondaryAllocationIds", "Secondary EIP allocation IDs."),
				strList("SecondaryPrivateIpAddresses", "Secondary private IPv4 addresses."),
				num("SecondaryPrivateIpAddressCount", "The number of secondary private IPv4 addresses to assign."),
				clientToken(),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"NatGateway":  objectNode("Information about the NAT gateway."),
				"ClientToken": strNode("Unique, case-sensitive identifier to ensure the idempotency of the request."),
			}),
		}, awsclient.API.CreateNatGateway),

		define(operation.Descriptor{
			Name:        "DeleteNatGateway",
			Description: "Deletes the specified NAT gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("NatGatewayId", "The ID of the NAT gateway."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"NatGatewayId": strNode("The ID of the NAT gateway."),
			}),
		}, awsclient.API.DeleteNatGateway),

		// The filter field of DescribeNatGateways is singular.
		define(paged(operation.Descriptor{
			Name:        "DescribeNatGateways",
			Description: "Describes your NAT gateways.",
			InputFields: []operation.FieldSpec{
				strList("NatGatewayIds", "The IDs of the NAT gateways."),
				filters("Filter"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"NatGateways": listNode("Information about the NAT gateways."),
			}),
		}), awsclient.API.DescribeNatGateways),
	}
}

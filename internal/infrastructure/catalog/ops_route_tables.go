package catalog

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

// routeTargets are the mutually exclusive targets of a VPC route.
func routeTargets() []operation.FieldSpec {
	return []operation.FieldSpec{
		str("DestinationCidrBlock", "The IPv4 CIDR address block used for the destination match."),
		str("DestinationIpv6CidrBlock", "The IPv6 CIDR block used for the destination match."),
		str("DestinationPrefixListId", "The ID of a prefix list used for the destination match."),
		str("GatewayId", "The ID of an internet gateway or virtual private gateway."),
		str("NatGatewayId", "The ID of a NAT gateway."),
		str("TransitGatewayId", "The ID of a transit gateway."),
		str("VpcEndpointId", "The ID of a VPC endpoint. Supported for Gateway Load Balancer endpoints only."),
		str("EgressOnlyInternetGatewayId", "[IPv6 traffic only] The ID of an egress-only internet gateway."),
		str("InstanceId", "The ID of a NAT instance in your VPC."),
		str("NetworkInterfaceId", "The ID of a network interface."),
		str("VpcPeeringConnectionId", "The ID of a VPC peering connection."),
		str("LocalGatewayId", "The ID of the local gateway."),
		str("CarrierGatewayId", "The ID of the carrier gateway."),
		str("CoreNetworkArn", "The Amazon Resource Name (ARN) of the core network."),
	}
}

func routeTableEntries() []Entry {
	return []Entry{
		define(operation.Descriptor{
			Name:        "CreateRouteTable",
			Description: "Creates a route table for the specified VPC.",
			InputFields: []operation.FieldSpec{
				reqStr("VpcId", "The ID of the VPC."),
				tagSpecifications(),
				clientToken(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"RouteTable":  objectNode("Information about the route table."),
				"ClientToken": strNode("Unique identifier of the request."),
			}),
		}, awsclient.API.CreateRouteTable),

		define(operation.Descriptor{
			Name:        "DeleteRouteTable",
			Description: "Deletes the specified route table. All subnets must be disassociated first.",
			InputFields: []operation.FieldSpec{
				reqStr("RouteTableId", "The ID of the route table."),
			},
			OutputShape: output(nil),
		}, awsclient.API.DeleteRouteTable),

		define(paged(operation.Descriptor{
			Name:        "DescribeRouteTables",
			Description: "Describes your route tables.",
			InputFields: []operation.FieldSpec{
				strList("RouteTableIds", "The IDs of the route tables."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"RouteTables": listNode("Information about the route tables."),
			}),
		}), awsclient.API.DescribeRouteTables),

		define(operation.Descriptor{
			Name:        "AssociateRouteTable",
			Description: "Associates a subnet or gateway with the specified route table.",
			InputFields: []operation.FieldSpec{
				reqStr("RouteTableId", "The ID of the route table."),
				str("SubnetId", "The ID of the subnet."),
				str("GatewayId", "The ID of the internet gateway or virtual private gateway."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"AssociationId":    strNode("The route table association ID."),
				"AssociationState": objectNode("The state of the association."),
			}),
		}, awsclient.API.AssociateRouteTable),

		define(operation.Descriptor{
			Name:        "DisassociateRouteTable",
			Description: "Disassociates a subnet or gateway from a route table.",
			InputFields: []operation.FieldSpec{
				reqStr("AssociationId", "The association ID representing the current association."),
			},
			OutputShape: output(nil),
		}, awsclient.API.DisassociateRouteTable),

		define(operation.Descriptor{
			Name:        "ReplaceRouteTableAssociation",
			Description: "Changes the route table associated with a given subnet, gateway or the main route table of a VPC.",
			InputFields: []operation.FieldSpec{
				reqStr("AssociationId", "The association ID."),
				reqStr("RouteTableId", "The ID of the new route table to associate."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"NewAssociationId": strNode("The ID of the new association."),
				"AssociationState": objectNode("The state of the association."),
			}),
		}, awsclient.API.ReplaceRouteTableAssociation),

		define(operation.Descriptor{
			Name:        "CreateRoute",
			Description: "Creates a route in a route table within a VPC.",
			InputFields: append([]operation.FieldSpec{
				reqStr("RouteTableId", "The ID of the route table for the route."),
			}, routeTargets()...),
			OutputShape: output(map[string]operation.SchemaNode{
				"Return": boolNode("Returns true if the request succeeds."),
			}),
		}, awsclient.API.CreateRoute),

		define(operation.Descriptor{
			Name:        "DeleteRoute",
			Description: "Deletes the specified route from the specified route table.",
			InputFields: []operation.FieldSpec{
				reqStr("RouteTableId", "The ID of the route table."),
				str("DestinationCidrBlock", "The IPv4 CIDR range for the route. The value must match the route exactly."),
				str("DestinationIpv6CidrBlock", "The IPv6 CIDR range for the route."),
				str("DestinationPrefixListId", "The ID of the prefix list for the route."),
			},
			OutputShape: output(nil),
		}, awsclient.API.DeleteRoute),

		define(operation.Descriptor{
			Name:        "ReplaceRoute",
			Description: "Replaces an existing route within a route table in a VPC.",
			InputFields: append(append([]operation.FieldSpec{
				reqStr("RouteTableId", "The ID of the route table."),
			}, routeTargets()...),
				boolean("LocalTarget", "Specifies whether to reset the local route to its default target (local)."),
			),
			OutputShape: output(nil),
		}, awsclient.API.ReplaceRoute),

		define(operation.Descriptor{
			Name:        "EnableVgwRoutePropagation",
			Description: "Enables a virtual private gateway to propagate routes to the specified route table of a VPC.",
			InputFields: []operation.FieldSpec{
				reqStr("GatewayId", "The ID of the virtual private gateway attached to your VPC."),
				reqStr("RouteTableId", "The ID of the route table."),
			},
			OutputShape: output(nil),
		}, awsclient.API.EnableVgwRoutePropagation),

		define(operation.Descriptor{
			Name:        "DisableVgwRoutePropagation",
			Description: "Disables a virtual private gateway from propagating routes to a specified route table of a VPC.",
			InputFields: []operation.FieldSpec{
				reqStr("GatewayId", "The ID of the virtual private gateway."),
				reqStr("RouteTableId", "The ID of the route table."),
			},
			OutputShape: output(nil),
		}, awsclient.API.DisableVgwRoutePropagation),
	}
}

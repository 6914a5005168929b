package catalog

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

func transitGatewayRoutingEntries() []Entry {
	return []Entry{
		define(operation.Descriptor{
			Name:        "CreateTransitGatewayRouteTable",
			Description: "Creates a route table for the specified transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayId", "The ID of the transit gateway."),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayRouteTable": objectNode("Information about the transit gateway route table."),
			}),
		}, awsclient.API.CreateTransitGatewayRouteTable),

		define(operation.Descriptor{
			Name:        "DeleteTransitGatewayRouteTable",
			Description: "Deletes the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayRouteTable": objectNode("Information about the deleted route table."),
			}),
		}, awsclient.API.DeleteTransitGatewayRouteTable),

		define(paged(operation.Descriptor{
			Name:        "DescribeTransitGatewayRouteTables",
			Description: "Describes one or more transit gateway route tables.",
			InputFields: []operation.FieldSpec{
				strList("TransitGatewayRouteTableIds", "The IDs of the transit gateway route tables."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayRouteTables": listNode("Information about the transit gateway route tables."),
			}),
		}), awsclient.API.DescribeTransitGatewayRouteTables),

		define(operation.Descriptor{
			Name:        "AssociateTransitGatewayRouteTable",
			Description: "Associates the specified attachment with the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Association": objectNode("The ID of the association."),
			}),
		}, awsclient.API.AssociateTransitGatewayRouteTable),

		define(operation.Descriptor{
			Name:        "DisassociateTransitGatewayRouteTable",
			Description: "Disassociates a resource attachment from a transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Association": objectNode("Information about the association."),
			}),
		}, awsclient.API.DisassociateTransitGatewayRouteTable),

		define(operation.Descriptor{
			Name:        "EnableTransitGatewayRouteTablePropagation",
			Description: "Enables the specified attachment to propagate routes to the specified propagation route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the propagation route table."),
				str("TransitGatewayAttachmentId", "The ID of the attachment."),
				str("TransitGatewayRouteTableAnnouncementId", "The ID of the transit gateway route table announcement."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Propagation": objectNode("Information about route propagation."),
			}),
		}, awsclient.API.EnableTransitGatewayRouteTablePropagation),

		define(operation.Descriptor{
			Name:        "DisableTransitGatewayRouteTablePropagation",
			Description: "Disables the specified resource attachment from propagating routes to the specified propagation route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the propagation route table."),
				str("TransitGatewayAttachmentId", "The ID of the attachment."),
				str("TransitGatewayRouteTableAnnouncementId", "The ID of the route table announcement."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Propagation": objectNode("Information about route propagation."),
			}),
		}, awsclient.API.DisableTransitGatewayRouteTablePropagation),

		define(operation.Descriptor{
			Name:        "CreateTransitGatewayRoute",
			Description: "Creates a static route for the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("DestinationCidrBlock", "The CIDR range used for destination matches."),
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				str("TransitGatewayAttachmentId", "The ID of the attachment."),
				boolean("Blackhole", "Indicates whether to drop traffic that matches this route."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Route": objectNode("Information about the route."),
			}),
		}, awsclient.API.CreateTransitGatewayRoute),

		define(operation.Descriptor{
			Name:        "DeleteTransitGatewayRoute",
			Description: "Deletes the specified route from the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				reqStr("DestinationCidrBlock", "The CIDR range for the route. This must match the CIDR for the route exactly."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Route": objectNode("Information about the route."),
			}),
		}, awsclient.API.DeleteTransitGatewayRoute),

		define(operation.Descriptor{
			Name:        "ReplaceTransitGatewayRoute",
			Description: "Replaces the specified route in the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("DestinationCidrBlock", "The CIDR range used for the destination match."),
				reqStr("TransitGatewayRouteTableId", "The ID of the route table."),
				str("TransitGatewayAttachmentId", "The ID of the attachment."),
				boolean("Blackhole", "Indicates whether traffic matching this route is to be dropped."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Route": objectNode("Information about the modified route."),
			}),
		}, awsclient.API.ReplaceTransitGatewayRoute),

		// SearchTransitGatewayRoutes takes MaxResults but has no continuation
		// token; truncation is signalled by AdditionalRoutesAvailable.
		define(operation.Descriptor{
			Name:        "SearchTransitGatewayRoutes",
			Description: "Searches for routes in the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				{Key: "Filters", Type: operation.TypeArray, Items: operation.TypeObject, Required: true,
					Description: "One or more filters, e.g. route-search.exact-match or state."},
				num("MaxResults", "The maximum number of routes to return."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Routes":                    listNode("Information about the routes."),
				"AdditionalRoutesAvailable": boolNode("Indicates whether there are additional routes available."),
			}),
		}, awsclient.API.SearchTransitGatewayRoutes),

		define(operation.Descriptor{
			Name:        "ExportTransitGatewayRoutes",
			Description: "Exports routes from the specified transit gateway route table to the specified S3 bucket.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the route table."),
				reqStr("S3Bucket", "The name of the S3 bucket."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"S3Location": strNode("The URL of the exported file in Amazon S3."),
			}),
		}, awsclient.API.ExportTransitGatewayRoutes),

		define(paged(operation.Descriptor{
			Name:        "GetTransitGatewayRouteTableAssociations",
			Description: "Gets information about the associations for the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Associations": listNode("Information about the associations."),
			}),
		}), awsclient.API.GetTransitGatewayRouteTableAssociations),

		define(paged(operation.Descriptor{
			Name:        "GetTransitGatewayRouteTablePropagations",
			Description: "Gets information about the route table propagations for the specified transit gateway route table.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayRouteTableId", "The ID of the transit gateway route table."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayRouteTablePropagations": listNode("Information about the route table propagations."),
			}),
		}), awsclient.API.GetTransitGatewayRouteTablePropagations),

		define(paged(operation.Descriptor{
			Name:        "GetTransitGatewayAttachmentPropagations",
			Description: "Lists the route tables to which the specified resource attachment propagates routes.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayAttachmentPropagations": listNode("Information about the propagation route tables."),
			}),
		}), awsclient.API.GetTransitGatewayAttachmentPropagations),
	}
}

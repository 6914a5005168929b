package catalog

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

func transitGatewayEntries() []Entry {
	return []Entry{
		define(operation.Descriptor{
			Name:        "CreateTransitGateway",
			Description: "Creates a transit gateway to interconnect VPCs and on-premises networks.",
			InputFields: []operation.FieldSpec{
				str("Description", "A description of the transit gateway."),
				obj("Options", "The transit gateway options, e.g. AmazonSideAsn or DefaultRouteTableAssociation."),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGateway": objectNode("Information about the transit gateway."),
			}),
		}, awsclient.API.CreateTransitGateway),

		define(operation.Descriptor{
			Name:        "DeleteTransitGateway",
			Description: "Deletes the specified transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayId", "The ID of the transit gateway."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGateway": objectNode("Information about the deleted transit gateway."),
			}),
		}, awsclient.API.DeleteTransitGateway),

		define(paged(operation.Descriptor{
			Name:        "DescribeTransitGateways",
			Description: "Describes one or more transit gateways.",
			InputFields: []operation.FieldSpec{
				strList("TransitGatewayIds", "The IDs of the transit gateways."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGateways": listNode("Information about the transit gateways."),
			}),
		}), awsclient.API.DescribeTransitGateways),

		define(operation.Descriptor{
			Name:        "ModifyTransitGateway",
			Description: "Modifies the specified transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayId", "The ID of the transit gateway."),
				str("Description", "The description for the transit gateway."),
				obj("Options", "The options to modify."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGateway": objectNode("Information about the transit gateway."),
			}),
		}, awsclient.API.ModifyTransitGateway),

		define(operation.Descriptor{
			Name:        "CreateTransitGatewayVpcAttachment",
			Description: "Attaches the specified VPC to the specified transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayId", "The ID of the transit gateway."),
				reqStr("VpcId", "The ID of the VPC."),
				{Key: "SubnetIds", Type: operation.TypeArray, Items: operation.TypeString, Required: true,
					Description: "The IDs of one or more subnets, at most one per Availability Zone."},
				obj("Options", "The VPC attachment options."),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachment": objectNode("Information about the VPC attachment."),
			}),
		}, awsclient.API.CreateTransitGatewayVpcAttachment),

		define(operation.Descriptor{
			Name:        "DeleteTransitGatewayVpcAttachment",
			Description: "Deletes the specified VPC attachment.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachment": objectNode("Information about the deleted VPC attachment."),
			}),
		}, awsclient.API.DeleteTransitGatewayVpcAttachment),

		define(paged(operation.Descriptor{
			Name:        "DescribeTransitGatewayVpcAttachments",
			Description: "Describes one or more VPC attachments.",
			InputFields: []operation.FieldSpec{
				strList("TransitGatewayAttachmentIds", "The IDs of the attachments."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachments": listNode("Information about the VPC attachments."),
			}),
		}), awsclient.API.DescribeTransitGatewayVpcAttachments),

		define(operation.Descriptor{
			Name:        "ModifyTransitGatewayVpcAttachment",
			Description: "Modifies the specified VPC attachment.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
				strList("AddSubnetIds", "The IDs of one or more subnets to add."),
				strList("RemoveSubnetIds", "The IDs of one or more subnets to remove."),
				obj("Options", "The new VPC attachment options."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachment": objectNode("Information about the modified attachment."),
			}),
		}, awsclient.API.ModifyTransitGatewayVpcAttachment),

		define(operation.Descriptor{
			Name:        "AcceptTransitGatewayVpcAttachment",
			Description: "Accepts a request to attach a VPC to a transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachment": objectNode("The VPC attachment."),
			}),
		}, awsclient.API.AcceptTransitGatewayVpcAttachment),

		define(operation.Descriptor{
			Name:        "RejectTransitGatewayVpcAttachment",
			Description: "Rejects a request to attach a VPC to a transit gateway.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayVpcAttachment": objectNode("Information about the attachment."),
			}),
		}, awsclient.API.RejectTransitGatewayVpcAttachment),

		define(paged(operation.Descriptor{
			Name:        "DescribeTransitGatewayAttachments",
			Description: "Describes one or more attachments between resources and transit gateways.",
			InputFields: []operation.FieldSpec{
				strList("TransitGatewayAttachmentIds", "The IDs of the attachments."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayAttachments": listNode("Information about the attachments."),
			}),
		}), awsclient.API.DescribeTransitGatewayAttachments),

		define(operation.Descriptor{
			Name:        "CreateTransitGatewayPeeringAttachment",
			Description: "Requests a transit gateway peering attachment between two transit gateways.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayId", "The ID of the requester transit gateway."),
				reqStr("PeerTransitGatewayId", "The ID of the peer transit gateway."),
				reqStr("PeerAccountId", "The ID of the Amazon Web Services account that owns the peer transit gateway."),
				reqStr("PeerRegion", "The Region where the peer transit gateway is located."),
				obj("Options", "The peering attachment options."),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayPeeringAttachment": objectNode("The transit gateway peering attachment."),
			}),
		}, awsclient.API.CreateTransitGatewayPeeringAttachment),

		define(operation.Descriptor{
			Name:        "AcceptTransitGatewayPeeringAttachment",
			Description: "Accepts a transit gateway peering attachment request.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the peering attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayPeeringAttachment": objectNode("The transit gateway peering attachment."),
			}),
		}, awsclient.API.AcceptTransitGatewayPeeringAttachment),

		define(operation.Descriptor{
			Name:        "RejectTransitGatewayPeeringAttachment",
			Description: "Rejects a transit gateway peering attachment request.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the peering attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayPeeringAttachment": objectNode("The transit gateway peering attachment."),
			}),
		}, awsclient.API.RejectTransitGatewayPeeringAttachment),

		define(operation.Descriptor{
			Name:        "DeleteTransitGatewayPeeringAttachment",
			Description: "Deletes a transit gateway peering attachment.",
			InputFields: []operation.FieldSpec{
				reqStr("TransitGatewayAttachmentId", "The ID of the peering attachment."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayPeeringAttachment": objectNode("The transit gateway peering attachment."),
			}),
		}, awsclient.API.DeleteTransitGatewayPeeringAttachment),

		define(paged(operation.Descriptor{
			Name:        "DescribeTransitGatewayPeeringAttachments",
			Description: "Describes your transit gateway peering attachments.",
			InputFields: []operation.FieldSpec{
				strList("TransitGatewayAttachmentIds", "One or more IDs of the peering attachments."),
				filters("Filters"),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"TransitGatewayPeeringAttachments": listNode("The transit gateway peering attachments."),
			}),
		}), awsclient.API.DescribeTransitGatewayPeeringAttachments),
	}
}

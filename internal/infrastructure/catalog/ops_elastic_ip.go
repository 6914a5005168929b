package catalog

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

func elasticIPEntries() []Entry {
	return []Entry{
		define(operation.Descriptor{
			Name:        "AllocateAddress",
			Description: "Allocates an Elastic IP address to your Amazon Web Services account.",
			InputFields: []operation.FieldSpec{
				str("Domain", "The network (vpc)."),
				str("Address", "The Elastic IP address to recover or an IPv4 address from an address pool."),
				str("PublicIpv4Pool", "The ID of an address pool that you own."),
				str("NetworkBorderGroup", "A unique set of Availability Zones from which Amazon Web Services advertises IP addresses."),
				str("CustomerOwnedIpv4Pool", "The ID of a customer-owned address pool."),
				str("IpamPoolId", "The ID of an IPAM pool."),
				tagSpecifications(),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"AllocationId": strNode("The ID that represents the allocation of the Elastic IP address."),
				"PublicIp":     strNode("The Elastic IP address."),
				"Domain":       strNode("The network (vpc)."),
			}),
		}, awsclient.API.AllocateAddress),

		define(operation.Descriptor{
			Name:        "ReleaseAddress",
			Description: "Releases the specified Elastic IP address.",
			InputFields: []operation.FieldSpec{
				str("AllocationId", "The allocation ID."),
				str("PublicIp", "Deprecated. The Elastic IP address."),
				str("NetworkBorderGroup", "The set of Availability Zones, Local Zones, or Wavelength Zones from which the address is advertised."),
			},
			OutputShape: output(nil),
		}, awsclient.API.ReleaseAddress),

		define(operation.Descriptor{
			Name:        "AssociateAddress",
			Description: "Associates an Elastic IP address with an instance or a network interface.",
			InputFields: []operation.FieldSpec{
				str("AllocationId", "The allocation ID."),
				str("InstanceId", "The ID of the instance."),
				str("PublicIp", "Deprecated."),
				str("NetworkInterfaceId", "The ID of the network interface."),
				str("PrivateIpAddress", "The primary or secondary private IP address to associate with the Elastic IP address."),
				boolean("AllowReassociation", "Reassociation is automatic, but you can specify false to ensure the operation fails if the address is already associated."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"AssociationId": strNode("The ID that represents the association of the Elastic IP address with an instance."),
			}),
		}, awsclient.API.AssociateAddress),

		define(operation.Descriptor{
			Name:        "DisassociateAddress",
			Description: "Disassociates an Elastic IP address from the instance or network interface it's associated with.",
			InputFields: []operation.FieldSpec{
				str("AssociationId", "The association ID."),
				str("PublicIp", "Deprecated."),
			},
			OutputShape: output(nil),
		}, awsclient.API.DisassociateAddress),

		// DescribeAddresses returns every match in one response.
		define(operation.Descriptor{
			Name:        "DescribeAddresses",
			Description: "Describes the specified Elastic IP addresses or all of your Elastic IP addresses.",
			InputFields: []operation.FieldSpec{
				filters("Filters"),
				strList("PublicIps", "One or more Elastic IP addresses."),
				strList("AllocationIds", "Information about the allocation IDs."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Addresses": listNode("Information about the Elastic IP addresses."),
			}),
		}, awsclient.API.DescribeAddresses),

		define(paged(operation.Descriptor{
			Name:        "DescribeAddressesAttribute",
			Description: "Describes the attributes of the specified Elastic IP addresses.",
			InputFields: []operation.FieldSpec{
				strList("AllocationIds", "The allocation IDs."),
				str("Attribute", "The attribute of the IP address (domain-name)."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Addresses": listNode("Information about the IP addresses."),
			}),
		}), awsclient.API.DescribeAddressesAttribute),

		define(operation.Descriptor{
			Name:        "ModifyAddressAttribute",
			Description: "Modifies an attribute of the specified Elastic IP address.",
			InputFields: []operation.FieldSpec{
				reqStr("AllocationId", "The allocation ID."),
				str("DomainName", "The domain name to modify for the IP address."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Address": objectNode("Information about the Elastic IP address."),
			}),
		}, awsclient.API.ModifyAddressAttribute),

		define(operation.Descriptor{
			Name:        "ResetAddressAttribute",
			Description: "Resets the attribute of the specified IP address.",
			InputFields: []operation.FieldSpec{
				reqStr("AllocationId", "The allocation ID."),
				reqStr("Attribute", "The attribute of the IP address (domain-name)."),
			},
			OutputShape: output(map[string]operation.SchemaNode{
				"Address": objectNode("Information about the IP address."),
			}),
		}, awsclient.API.ResetAddressAttribute),
	}
}

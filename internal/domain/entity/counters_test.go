package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceCountersAdd(t *testing.T) {
	counters := ResourceCounters{}

	counters.Add(RegionCounts{
		Profile:               "dev",
		Region:                "us-east-1",
		EC2Instances:          1,
		RDSInstances:          2,
		RedshiftClusters:      3,
		ClassicLoadBalancers:  4,
		LoadBalancersV2:       5,
		NATGateways:           6,
		ECSFargateClusters:    7,
		FargateRunningTasks:   8,
		FargateActiveServices: 9,
		TaskDefinitions:       10,
		LambdaFunctions:       11,
	})
	counters.Add(RegionCounts{
		Profile:         "dev",
		Region:          "eu-west-1",
		EC2Instances:    10,
		NATGateways:     1,
		LambdaFunctions: 2,
	})

	assert.Equal(t, 11, counters.EC2Instances)
	assert.Equal(t, 2, counters.RDSInstances)
	assert.Equal(t, 3, counters.RedshiftClusters)
	assert.Equal(t, 4, counters.ClassicLoadBalancers)
	assert.Equal(t, 5, counters.LoadBalancersV2)
	assert.Equal(t, 7, counters.NATGateways)
	assert.Equal(t, 7, counters.ECSFargateClusters)
	assert.Equal(t, 8, counters.FargateRunningTasks)
	assert.Equal(t, 9, counters.FargateActiveServices)
	assert.Equal(t, 10, counters.TaskDefinitions)
	assert.Equal(t, 13, counters.LambdaFunctions)
}

func TestBillableTotalExcludesContainerAndServerless(t *testing.T) {
	counters := ResourceCounters{
		EC2Instances:         3,
		RDSInstances:         3,
		RedshiftClusters:     3,
		ClassicLoadBalancers: 3,
		LoadBalancersV2:      3,
		NATGateways:          3,

		ECSFargateClusters:    100,
		FargateRunningTasks:   100,
		FargateActiveServices: 100,
		TaskDefinitions:       100,
		LambdaFunctions:       100,
	}

	assert.Equal(t, 18, counters.BillableTotal())
}

func TestBillableTotalZero(t *testing.T) {
	assert.Equal(t, 0, ResourceCounters{}.BillableTotal())
}

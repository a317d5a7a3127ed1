package condition

import "github.com/roach88/advkit/pkg/ir"

// Damage matches a damage event.
type Damage struct {
	dealt        *Range
	taken        *Range
	blocked      *bool
	flags        *DamageFlags
	sourceEntity *Entity
}

// NewDamage returns a descriptor matching any damage.
func NewDamage() Damage {
	return Damage{}
}

// Dealt sets the range of damage before reductions.
func (d Damage) Dealt(r Range) Damage {
	d.dealt = &r
	return d
}

// Taken sets the range of damage after reductions.
func (d Damage) Taken(r Range) Damage {
	d.taken = &r
	return d
}

// Blocked sets whether a shield blocked the damage.
func (d Damage) Blocked(b bool) Damage {
	d.blocked = ptr(b)
	return d
}

// Type sets the damage type flags.
func (d Damage) Type(f DamageFlags) Damage {
	d.flags = &f
	return d
}

// SourceEntity sets the entity that caused the damage.
func (d Damage) SourceEntity(e Entity) Damage {
	d.sourceEntity = &e
	return d
}

// Render implements Renderer.
func (d Damage) Render() ir.Value {
	obj := ir.NewObject()
	setRange(obj, "dealt", d.dealt)
	setRange(obj, "taken", d.taken)
	setBool(obj, "blocked", d.blocked)
	if d.flags != nil {
		obj.Set("type", d.flags.Render())
	}
	if d.sourceEntity != nil {
		obj.Set("source_entity", d.sourceEntity.Render())
	}
	return obj
}

// DamageFlags matches the kind of a damage source.
type DamageFlags struct {
	bypassesArmor           *bool
	bypassesInvulnerability *bool
	bypassesMagic           *bool
	isExplosion             *bool
	isFire                  *bool
	isMagic                 *bool
	isProjectile            *bool
	sourceEntity            *Entity
	directEntity            *Entity
}

// NewDamageFlags returns flags matching any damage source.
func NewDamageFlags() DamageFlags {
	return DamageFlags{}
}

// BypassesArmor matches damage that ignores armor.
func (f DamageFlags) BypassesArmor(b bool) DamageFlags {
	f.bypassesArmor = ptr(b)
	return f
}

// BypassesInvulnerability matches damage that ignores invulnerability.
func (f DamageFlags) BypassesInvulnerability(b bool) DamageFlags {
	f.bypassesInvulnerability = ptr(b)
	return f
}

// BypassesMagic matches damage that ignores potion effects and enchantments.
func (f DamageFlags) BypassesMagic(b bool) DamageFlags {
	f.bypassesMagic = ptr(b)
	return f
}

// IsExplosion matches explosion damage.
func (f DamageFlags) IsExplosion(b bool) DamageFlags {
	f.isExplosion = ptr(b)
	return f
}

// IsFire matches fire damage.
func (f DamageFlags) IsFire(b bool) DamageFlags {
	f.isFire = ptr(b)
	return f
}

// IsMagic matches magic damage.
func (f DamageFlags) IsMagic(b bool) DamageFlags {
	f.isMagic = ptr(b)
	return f
}

// IsProjectile matches projectile damage.
func (f DamageFlags) IsProjectile(b bool) DamageFlags {
	f.isProjectile = ptr(b)
	return f
}

// SourceEntity sets the entity ultimately responsible (the shooter of an
// arrow).
func (f DamageFlags) SourceEntity(e Entity) DamageFlags {
	f.sourceEntity = &e
	return f
}

// DirectEntity sets the entity that dealt the damage directly (the arrow).
func (f DamageFlags) DirectEntity(e Entity) DamageFlags {
	f.directEntity = &e
	return f
}

// Render implements Renderer.
func (f DamageFlags) Render() ir.Value {
	obj := ir.NewObject()
	setBool(obj, "bypasses_armor", f.bypassesArmor)
	setBool(obj, "bypasses_invulnerability", f.bypassesInvulnerability)
	setBool(obj, "bypasses_magic", f.bypassesMagic)
	setBool(obj, "is_explosion", f.isExplosion)
	setBool(obj, "is_fire", f.isFire)
	setBool(obj, "is_magic", f.isMagic)
	setBool(obj, "is_projectile", f.isProjectile)
	if f.sourceEntity != nil {
		obj.Set("source_entity", f.sourceEntity.Render())
	}
	if f.directEntity != nil {
		obj.Set("direct_entity", f.directEntity.Render())
	}
	return obj
}
